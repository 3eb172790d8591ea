package usecases

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/application/membership/dto"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/shared/biztime"
	"github.com/gymflow/gymflow/internal/shared/constants"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

type ListHistoryQuery struct {
	MemberID uint
	Page     int
	PageSize int
}

type ListHistoryUseCase struct {
	recordRepo membership.RecordRepository
	planRepo   membership.PlanRepository
	clock      biztime.Clock
	logger     logger.Interface
}

func NewListHistoryUseCase(
	recordRepo membership.RecordRepository,
	planRepo membership.PlanRepository,
	clock biztime.Clock,
	logger logger.Interface,
) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		recordRepo: recordRepo,
		planRepo:   planRepo,
		clock:      clock,
		logger:     logger,
	}
}

// Execute lists the member's record versions, newest first.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, query ListHistoryQuery) (*dto.HistoryDTO, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	records, total, err := uc.recordRepo.ListHistory(ctx, query.MemberID, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list membership history", "member_id", query.MemberID, "error", err)
		return nil, fmt.Errorf("failed to list membership history: %w", err)
	}

	planIDs := lo.Uniq(lo.Map(records, func(r *membership.Record, _ int) uint { return r.PlanID() }))
	plans := make(map[uint]*membership.Plan, len(planIDs))
	for _, id := range planIDs {
		plan, err := uc.planRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get plan: %w", err)
		}
		if plan != nil {
			plans[id] = plan
		}
	}

	return &dto.HistoryDTO{
		Versions: dto.ToMembershipDTOs(records, plans, uc.clock.Now()),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
