package usecases

import (
	"context"
	"fmt"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type SeedCatalogCommand struct {
	Plans []*membership.Plan
}

// SeedCatalogUseCase creates catalog plans that do not exist yet. Existing plans
// are matched by name and never repriced; a seed marked retired retires its match.
type SeedCatalogUseCase struct {
	planRepo  membership.PlanRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewSeedCatalogUseCase(planRepo membership.PlanRepository, txManager TransactionManager, logger logger.Interface) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{
		planRepo:  planRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *SeedCatalogUseCase) Execute(ctx context.Context, cmd SeedCatalogCommand) (*dto.SeedCatalogResultDTO, error) {
	result := &dto.SeedCatalogResultDTO{
		Created: []string{},
		Skipped: []string{},
		Retired: []string{},
	}

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, plan := range cmd.Plans {
			existing, err := uc.planRepo.GetByName(ctx, plan.Name())
			if err != nil {
				return fmt.Errorf("failed to look up plan %q: %w", plan.Name(), err)
			}

			switch {
			case existing == nil:
				if err := uc.planRepo.Create(ctx, plan); err != nil {
					return err
				}
				result.Created = append(result.Created, plan.Name())
			case plan.IsRetired() && !existing.IsRetired():
				existing.Retire()
				if err := uc.planRepo.Update(ctx, existing); err != nil {
					return fmt.Errorf("failed to retire plan %q: %w", plan.Name(), err)
				}
				result.Retired = append(result.Retired, plan.Name())
			default:
				result.Skipped = append(result.Skipped, plan.Name())
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to seed plan catalog", "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("plan catalog seeded",
		"created", len(result.Created),
		"retired", len(result.Retired),
		"skipped", len(result.Skipped),
	)
	return result, nil
}
