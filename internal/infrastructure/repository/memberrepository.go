package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/mappers"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
	"github.com/gymflow/gymflow/internal/shared/db"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type MemberRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MemberMapper
	logger logger.Interface
}

func NewMemberRepository(db *gorm.DB, logger logger.Interface) member.Repository {
	return &MemberRepositoryImpl{
		db:     db,
		mapper: mappers.NewMemberMapper(),
		logger: logger,
	}
}

func (r *MemberRepositoryImpl) Create(ctx context.Context, m *member.Member) error {
	model := r.mapper.ToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create member", "error", err)
		return fmt.Errorf("failed to create member: %w", err)
	}
	m.SetID(model.ID)
	return nil
}

func (r *MemberRepositoryImpl) GetByID(ctx context.Context, id uint) (*member.Member, error) {
	var model models.MemberModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get member", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *MemberRepositoryImpl) GetByEmail(ctx context.Context, email string) (*member.Member, error) {
	var model models.MemberModel
	if err := db.GetTxFromContext(ctx, r.db).Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member by email: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

// Update writes the personal-data columns.
func (r *MemberRepositoryImpl) Update(ctx context.Context, m *member.Member) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.MemberModel{}).
		Where("id = ?", m.ID()).
		Updates(map[string]any{
			"full_name":     m.FullName(),
			"phone":         m.Phone(),
			"address":       m.Address(),
			"date_of_birth": m.DateOfBirth(),
			"updated_at":    m.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update member", "id", m.ID(), "error", result.Error)
		return fmt.Errorf("failed to update member: %w", result.Error)
	}
	return nil
}
