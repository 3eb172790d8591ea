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

// MembershipRecordRepositoryImpl stores record versions. It never updates a row.
type MembershipRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MembershipRecordMapper
	logger logger.Interface
}

func NewMembershipRecordRepository(db *gorm.DB, logger logger.Interface) membership.RecordRepository {
	return &MembershipRecordRepositoryImpl{
		db:     db,
		mapper: mappers.NewMembershipRecordMapper(),
		logger: logger,
	}
}

func (r *MembershipRecordRepositoryImpl) GetCurrent(ctx context.Context, memberID uint) (*membership.Record, error) {
	var model models.MembershipRecordModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("member_id = ?", memberID).
		Order("version DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get current membership record", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to get membership record: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MembershipRecordRepositoryImpl) GetByVersion(ctx context.Context, memberID uint, version int) (*membership.Record, error) {
	var model models.MembershipRecordModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("member_id = ? AND version = ?", memberID, version).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get membership record version", "member_id", memberID, "version", version, "error", err)
		return nil, fmt.Errorf("failed to get membership record: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// Append inserts record as a new version. Losing a race for the same version
// surfaces as membership.ErrConflict.
func (r *MembershipRecordRepositoryImpl) Append(ctx context.Context, record *membership.Record) error {
	model := r.mapper.ToModel(record)
	model.ID = 0

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			r.logger.Warnw("membership record version already exists",
				"member_id", record.MemberID(),
				"version", record.Version(),
			)
			return fmt.Errorf("%w: version %d of member %d already exists", membership.ErrConflict, record.Version(), record.MemberID())
		}
		r.logger.Errorw("failed to append membership record", "member_id", record.MemberID(), "error", err)
		return fmt.Errorf("failed to append membership record: %w", err)
	}

	record.SetID(model.ID)
	return nil
}

func (r *MembershipRecordRepositoryImpl) ListHistory(ctx context.Context, memberID uint, page, pageSize int) ([]*membership.Record, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.MembershipRecordModel{}).Where("member_id = ?", memberID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count membership history: %w", err)
	}

	var recordModels []*models.MembershipRecordModel
	offset := (page - 1) * pageSize
	if err := query.Order("version DESC").Offset(offset).Limit(pageSize).Find(&recordModels).Error; err != nil {
		r.logger.Errorw("failed to list membership history", "member_id", memberID, "error", err)
		return nil, 0, fmt.Errorf("failed to list membership history: %w", err)
	}

	records, err := r.mapper.ToEntities(recordModels)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *MembershipRecordRepositoryImpl) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.MembershipRecordModel{}).Where("plan_id = ?", planID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count membership records: %w", err)
	}
	return count, nil
}
