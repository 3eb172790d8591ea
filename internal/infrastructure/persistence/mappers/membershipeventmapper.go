package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
)

type MembershipEventMapper interface {
	ToEntity(model *models.MembershipEventModel) (*membership.Event, error)
	ToModel(entity *membership.Event) (*models.MembershipEventModel, error)
}

type MembershipEventMapperImpl struct{}

func NewMembershipEventMapper() MembershipEventMapper {
	return &MembershipEventMapperImpl{}
}

func (m *MembershipEventMapperImpl) ToEntity(model *models.MembershipEventModel) (*membership.Event, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event metadata: %w", err)
		}
	}

	eventType := vo.EventType(model.EventType)
	if !vo.ValidEventTypes[eventType] {
		return nil, fmt.Errorf("invalid membership event type: %s", model.EventType)
	}

	return membership.ReconstructEvent(
		model.ID,
		model.MemberID,
		model.RecordVersion,
		eventType,
		model.OldPlanID,
		model.NewPlanID,
		metadata,
		model.CreatedAt,
	), nil
}

func (m *MembershipEventMapperImpl) ToModel(entity *membership.Event) (*models.MembershipEventModel, error) {
	if entity == nil {
		return nil, nil
	}

	metadata, err := json.Marshal(entity.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event metadata: %w", err)
	}

	return &models.MembershipEventModel{
		ID:            entity.ID(),
		MemberID:      entity.MemberID(),
		RecordVersion: entity.RecordVersion(),
		EventType:     entity.EventType().String(),
		OldPlanID:     entity.OldPlanID(),
		NewPlanID:     entity.NewPlanID(),
		Metadata:      datatypes.JSON(metadata),
		CreatedAt:     entity.CreatedAt(),
	}, nil
}
