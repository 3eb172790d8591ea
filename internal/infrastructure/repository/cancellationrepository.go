package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/mappers"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
	"github.com/gymflow/gymflow/internal/shared/db"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type CancellationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CancellationMapper
	logger logger.Interface
}

func NewCancellationRepository(db *gorm.DB, logger logger.Interface) membership.CancellationRepository {
	return &CancellationRepositoryImpl{
		db:     db,
		mapper: mappers.NewCancellationMapper(),
		logger: logger,
	}
}

func (r *CancellationRepositoryImpl) Create(ctx context.Context, record *membership.CancellationRecord) error {
	model := r.mapper.ToModel(record)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create cancellation record", "member_id", record.MemberID(), "error", err)
		return fmt.Errorf("failed to create cancellation record: %w", err)
	}
	record.SetID(model.ID)
	return nil
}

func (r *CancellationRepositoryImpl) ListByMember(ctx context.Context, memberID uint) ([]*membership.CancellationRecord, error) {
	var cancellationModels []*models.CancellationRecordModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("member_id = ?", memberID).
		Order("cancelled_at DESC, id DESC").
		Find(&cancellationModels).Error
	if err != nil {
		r.logger.Errorw("failed to list cancellation records", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to list cancellation records: %w", err)
	}

	records := make([]*membership.CancellationRecord, 0, len(cancellationModels))
	for _, m := range cancellationModels {
		records = append(records, r.mapper.ToEntity(m))
	}
	return records, nil
}
