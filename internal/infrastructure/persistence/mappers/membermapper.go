package mappers

import (
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
)

type MemberMapper interface {
	ToEntity(model *models.MemberModel) *member.Member
	ToModel(entity *member.Member) *models.MemberModel
}

type MemberMapperImpl struct{}

func NewMemberMapper() MemberMapper {
	return &MemberMapperImpl{}
}

func (m *MemberMapperImpl) ToEntity(model *models.MemberModel) *member.Member {
	if model == nil {
		return nil
	}
	return member.ReconstructMember(
		model.ID,
		model.Email,
		model.FullName,
		model.Phone,
		model.Address,
		model.DateOfBirth,
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *MemberMapperImpl) ToModel(entity *member.Member) *models.MemberModel {
	if entity == nil {
		return nil
	}
	return &models.MemberModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		FullName:     entity.FullName(),
		Phone:        entity.Phone(),
		Address:      entity.Address(),
		DateOfBirth:  entity.DateOfBirth(),
		PasswordHash: entity.PasswordHash(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}
