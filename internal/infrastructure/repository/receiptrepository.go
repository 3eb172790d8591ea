package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/mappers"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
	"github.com/gymflow/gymflow/internal/shared/db"
	sharedErrors "github.com/gymflow/gymflow/internal/shared/errors"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type ReceiptRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RedeemedReceiptMapper
	logger logger.Interface
}

func NewReceiptRepository(db *gorm.DB, logger logger.Interface) membership.ReceiptRepository {
	return &ReceiptRepositoryImpl{
		db:     db,
		mapper: mappers.NewRedeemedReceiptMapper(),
		logger: logger,
	}
}

func (r *ReceiptRepositoryImpl) Redeem(ctx context.Context, receipt *membership.RedeemedReceipt) error {
	model := r.mapper.ToModel(receipt)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			r.logger.Warnw("payment receipt replayed",
				"member_id", receipt.MemberID(),
				"reference", receipt.Reference(),
			)
			return membership.ErrReceiptRedeemed
		}
		r.logger.Errorw("failed to redeem payment receipt", "member_id", receipt.MemberID(), "error", err)
		return fmt.Errorf("failed to redeem payment receipt: %w", err)
	}
	receipt.SetID(model.ID)
	return nil
}

func (r *ReceiptRepositoryImpl) GetByKey(ctx context.Context, receiptKey string) (*membership.RedeemedReceipt, error) {
	var model models.RedeemedReceiptModel
	if err := db.GetTxFromContext(ctx, r.db).Where("receipt_key = ?", receiptKey).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get payment receipt", "error", err)
		return nil, fmt.Errorf("failed to get payment receipt: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}
