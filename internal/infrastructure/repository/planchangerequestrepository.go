package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/mappers"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
	"github.com/gymflow/gymflow/internal/shared/db"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type PlanChangeRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanChangeRequestMapper
	logger logger.Interface
}

func NewPlanChangeRequestRepository(db *gorm.DB, logger logger.Interface) membership.PlanChangeRepository {
	return &PlanChangeRequestRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanChangeRequestMapper(),
		logger: logger,
	}
}

func (r *PlanChangeRequestRepositoryImpl) Create(ctx context.Context, request *membership.PlanChangeRequest) error {
	model := r.mapper.ToModel(request)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan change request", "member_id", request.MemberID(), "error", err)
		return fmt.Errorf("failed to create plan change request: %w", err)
	}
	request.SetID(model.ID)
	return nil
}

func (r *PlanChangeRequestRepositoryImpl) GetByRequestID(ctx context.Context, requestID string) (*membership.PlanChangeRequest, error) {
	var model models.PlanChangeRequestModel
	if err := db.GetTxFromContext(ctx, r.db).Where("request_id = ?", requestID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan change request", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("failed to get plan change request: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// Update writes the lifecycle columns. The priced figures are immutable.
func (r *PlanChangeRequestRepositoryImpl) Update(ctx context.Context, request *membership.PlanChangeRequest) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanChangeRequestModel{}).
		Where("request_id = ?", request.RequestID()).
		Updates(map[string]any{
			"status":                 request.Status().String(),
			"confirmed_at":           request.ConfirmedAt(),
			"applied_at":             request.AppliedAt(),
			"applied_record_version": request.AppliedRecordVersion(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan change request", "request_id", request.RequestID(), "error", result.Error)
		return fmt.Errorf("failed to update plan change request: %w", result.Error)
	}
	return nil
}

func (r *PlanChangeRequestRepositoryImpl) ExpireLiveByMember(ctx context.Context, memberID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanChangeRequestModel{}).
		Where("member_id = ? AND status IN ?", memberID, []string{
			vo.PlanChangeCalculated.String(),
			vo.PlanChangeConfirmed.String(),
		}).
		Update("status", vo.PlanChangeExpired.String())
	if result.Error != nil {
		r.logger.Errorw("failed to expire live plan change requests", "member_id", memberID, "error", result.Error)
		return 0, fmt.Errorf("failed to expire plan change requests: %w", result.Error)
	}
	return result.RowsAffected, nil
}
