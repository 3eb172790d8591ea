package mappers

import (
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
)

type RedeemedReceiptMapper interface {
	ToEntity(model *models.RedeemedReceiptModel) *membership.RedeemedReceipt
	ToModel(entity *membership.RedeemedReceipt) *models.RedeemedReceiptModel
}

type RedeemedReceiptMapperImpl struct{}

func NewRedeemedReceiptMapper() RedeemedReceiptMapper {
	return &RedeemedReceiptMapperImpl{}
}

func (m *RedeemedReceiptMapperImpl) ToEntity(model *models.RedeemedReceiptModel) *membership.RedeemedReceipt {
	if model == nil {
		return nil
	}
	return membership.ReconstructRedeemedReceipt(
		model.ID,
		model.ReceiptKey,
		model.MemberID,
		model.Reference,
		model.AmountMinorUnits,
		model.RedeemedAt,
	)
}

func (m *RedeemedReceiptMapperImpl) ToModel(entity *membership.RedeemedReceipt) *models.RedeemedReceiptModel {
	if entity == nil {
		return nil
	}
	return &models.RedeemedReceiptModel{
		ID:               entity.ID(),
		ReceiptKey:       entity.ReceiptKey(),
		MemberID:         entity.MemberID(),
		Reference:        entity.Reference(),
		AmountMinorUnits: entity.AmountMinorUnits(),
		RedeemedAt:       entity.RedeemedAt(),
	}
}
