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

type MembershipEventRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MembershipEventMapper
	logger logger.Interface
}

func NewMembershipEventRepository(db *gorm.DB, logger logger.Interface) membership.EventRepository {
	return &MembershipEventRepositoryImpl{
		db:     db,
		mapper: mappers.NewMembershipEventMapper(),
		logger: logger,
	}
}

func (r *MembershipEventRepositoryImpl) Create(ctx context.Context, event *membership.Event) error {
	model, err := r.mapper.ToModel(event)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create membership event",
			"member_id", event.MemberID(),
			"event_type", event.EventType(),
			"error", err,
		)
		return fmt.Errorf("failed to create membership event: %w", err)
	}
	event.SetID(model.ID)
	return nil
}

func (r *MembershipEventRepositoryImpl) ListByMember(ctx context.Context, memberID uint) ([]*membership.Event, error) {
	var eventModels []*models.MembershipEventModel
	if err := db.GetTxFromContext(ctx, r.db).Where("member_id = ?", memberID).Order("record_version ASC, id ASC").Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list membership events: %w", err)
	}

	events := make([]*membership.Event, 0, len(eventModels))
	for _, m := range eventModels {
		e, err := r.mapper.ToEntity(m)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
