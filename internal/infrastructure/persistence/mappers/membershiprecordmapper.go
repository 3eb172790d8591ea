package mappers

import (
	"fmt"

	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
)

type MembershipRecordMapper interface {
	ToEntity(model *models.MembershipRecordModel) (*membership.Record, error)
	ToModel(entity *membership.Record) *models.MembershipRecordModel
	ToEntities(models []*models.MembershipRecordModel) ([]*membership.Record, error)
}

type MembershipRecordMapperImpl struct{}

func NewMembershipRecordMapper() MembershipRecordMapper {
	return &MembershipRecordMapperImpl{}
}

func (m *MembershipRecordMapperImpl) ToEntity(model *models.MembershipRecordModel) (*membership.Record, error) {
	if model == nil {
		return nil, nil
	}

	var window *membership.PauseWindow
	if model.PauseStart != nil && model.PauseEnd != nil {
		window = &membership.PauseWindow{
			Start: *model.PauseStart,
			End:   *model.PauseEnd,
		}
		if model.PauseDurationDays != nil {
			window.DurationDays = *model.PauseDurationDays
		}
	}

	entity, err := membership.ReconstructRecord(
		model.ID,
		model.MemberID,
		model.PlanID,
		model.Version,
		model.StartDate,
		model.EndDate,
		vo.Status(model.Status),
		model.AutoRenew,
		window,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct membership record: %w", err)
	}
	return entity, nil
}

func (m *MembershipRecordMapperImpl) ToModel(entity *membership.Record) *models.MembershipRecordModel {
	if entity == nil {
		return nil
	}

	model := &models.MembershipRecordModel{
		ID:        entity.ID(),
		MemberID:  entity.MemberID(),
		Version:   entity.Version(),
		PlanID:    entity.PlanID(),
		StartDate: entity.StartDate(),
		EndDate:   entity.EndDate(),
		Status:    entity.Status().String(),
		AutoRenew: entity.AutoRenew(),
		CreatedAt: entity.CreatedAt(),
	}
	if w := entity.PauseWindow(); w != nil {
		model.PauseStart = &w.Start
		model.PauseEnd = &w.End
		model.PauseDurationDays = &w.DurationDays
	}
	return model
}

func (m *MembershipRecordMapperImpl) ToEntities(models []*models.MembershipRecordModel) ([]*membership.Record, error) {
	entities := make([]*membership.Record, 0, len(models))
	for _, model := range models {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
