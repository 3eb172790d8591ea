package mappers

import (
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
)

type CancellationMapper interface {
	ToEntity(model *models.CancellationRecordModel) *membership.CancellationRecord
	ToModel(entity *membership.CancellationRecord) *models.CancellationRecordModel
}

type CancellationMapperImpl struct{}

func NewCancellationMapper() CancellationMapper {
	return &CancellationMapperImpl{}
}

func (m *CancellationMapperImpl) ToEntity(model *models.CancellationRecordModel) *membership.CancellationRecord {
	if model == nil {
		return nil
	}
	return membership.ReconstructCancellationRecord(
		model.ID,
		model.MemberID,
		model.PlanID,
		model.RecordVersion,
		model.DaysLeftAtCancellation,
		model.ValueLostMinorUnits,
		model.Reason,
		model.CancelledAt,
	)
}

func (m *CancellationMapperImpl) ToModel(entity *membership.CancellationRecord) *models.CancellationRecordModel {
	if entity == nil {
		return nil
	}
	return &models.CancellationRecordModel{
		ID:                     entity.ID(),
		MemberID:               entity.MemberID(),
		PlanID:                 entity.PlanID(),
		RecordVersion:          entity.RecordVersion(),
		DaysLeftAtCancellation: entity.DaysLeftAtCancellation(),
		ValueLostMinorUnits:    entity.ValueLostMinorUnits(),
		Reason:                 entity.Reason(),
		CancelledAt:            entity.CancelledAt(),
	}
}
