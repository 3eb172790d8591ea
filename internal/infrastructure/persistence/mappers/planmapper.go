package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*membership.Plan, error)
	ToModel(entity *membership.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*membership.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*membership.Plan, error) {
	if model == nil {
		return nil, nil
	}

	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan features: %w", err)
		}
	}

	entity, err := membership.ReconstructPlan(
		model.ID,
		model.Name,
		model.PriceMinorUnits,
		model.DurationMonths,
		features,
		model.Description,
		model.Currency,
		model.Retired,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan: %w", err)
	}
	return entity, nil
}

func (m *PlanMapperImpl) ToModel(entity *membership.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	features, err := json.Marshal(entity.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan features: %w", err)
	}

	return &models.PlanModel{
		ID:              entity.ID(),
		Name:            entity.Name(),
		PriceMinorUnits: entity.PriceMinorUnits(),
		DurationMonths:  entity.DurationMonths(),
		Features:        datatypes.JSON(features),
		Description:     entity.Description(),
		Currency:        entity.Currency(),
		Retired:         entity.IsRetired(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(models []*models.PlanModel) ([]*membership.Plan, error) {
	entities := make([]*membership.Plan, 0, len(models))
	for _, model := range models {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map plan %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
