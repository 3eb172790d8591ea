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

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) membership.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *membership.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return fmt.Errorf("%w: plan %q already exists", membership.ErrConflict, plan.Name())
		}
		r.logger.Errorw("failed to create plan", "name", plan.Name(), "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set plan ID: %w", err)
	}

	r.logger.Infow("plan created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*membership.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) GetByName(ctx context.Context, name string) (*membership.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// List returns plans ordered by duration then price, the order the catalog is shown in.
func (r *PlanRepositoryImpl) List(ctx context.Context, includeRetired bool) ([]*membership.Plan, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{})
	if !includeRetired {
		query = query.Where("retired = ?", false)
	}

	var planModels []*models.PlanModel
	if err := query.Order("duration_months ASC, price_minor_units ASC, id ASC").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return r.mapper.ToEntities(planModels)
}

// Update persists the mutable part of a plan. Price, duration and features are never rewritten.
func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *membership.Plan) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]any{
			"retired":     plan.IsRetired(),
			"description": plan.Description(),
			"updated_at":  plan.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "id", plan.ID(), "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return membership.ErrPlanNotFound
	}
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var refs int64
	if err := tx.Model(&models.MembershipRecordModel{}).Where("plan_id = ?", id).Count(&refs).Error; err != nil {
		return fmt.Errorf("failed to count plan references: %w", err)
	}
	if refs > 0 {
		return membership.ErrPlanInUse
	}

	result := tx.Delete(&models.PlanModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return membership.ErrPlanNotFound
	}

	r.logger.Infow("plan deleted", "id", id)
	return nil
}
