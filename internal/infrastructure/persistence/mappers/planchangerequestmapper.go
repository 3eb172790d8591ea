package mappers

import (
	"fmt"

	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
)

type PlanChangeRequestMapper interface {
	ToEntity(model *models.PlanChangeRequestModel) (*membership.PlanChangeRequest, error)
	ToModel(entity *membership.PlanChangeRequest) *models.PlanChangeRequestModel
}

type PlanChangeRequestMapperImpl struct{}

func NewPlanChangeRequestMapper() PlanChangeRequestMapper {
	return &PlanChangeRequestMapperImpl{}
}

func (m *PlanChangeRequestMapperImpl) ToEntity(model *models.PlanChangeRequestModel) (*membership.PlanChangeRequest, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := membership.ReconstructPlanChangeRequest(
		model.ID,
		model.RequestID,
		model.MemberID,
		model.FromPlanID,
		model.ToPlanID,
		model.BaseRecordVersion,
		model.DaysRemaining,
		model.DaysTotal,
		model.CurrentPlanBalance,
		model.NewPlanPrice,
		model.BalanceDifference,
		model.PaymentRequired,
		vo.PlanChangeStatus(model.Status),
		model.CreatedAt,
		model.ExpiresAt,
		model.ConfirmedAt,
		model.AppliedAt,
		model.AppliedRecordVersion,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan change request: %w", err)
	}
	return entity, nil
}

func (m *PlanChangeRequestMapperImpl) ToModel(entity *membership.PlanChangeRequest) *models.PlanChangeRequestModel {
	if entity == nil {
		return nil
	}

	return &models.PlanChangeRequestModel{
		ID:                   entity.ID(),
		RequestID:            entity.RequestID(),
		MemberID:             entity.MemberID(),
		FromPlanID:           entity.FromPlanID(),
		ToPlanID:             entity.ToPlanID(),
		BaseRecordVersion:    entity.BaseRecordVersion(),
		DaysRemaining:        entity.DaysRemaining(),
		DaysTotal:            entity.DaysTotal(),
		CurrentPlanBalance:   entity.CurrentPlanBalance(),
		NewPlanPrice:         entity.NewPlanPrice(),
		BalanceDifference:    entity.BalanceDifference(),
		PaymentRequired:      entity.PaymentRequired(),
		Status:               entity.Status().String(),
		ExpiresAt:            entity.ExpiresAt(),
		ConfirmedAt:          entity.ConfirmedAt(),
		AppliedAt:            entity.AppliedAt(),
		AppliedRecordVersion: entity.AppliedRecordVersion(),
		CreatedAt:            entity.CreatedAt(),
	}
}
