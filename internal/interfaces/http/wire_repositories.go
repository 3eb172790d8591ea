package http

import (
	"gorm.io/gorm"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/membership"
	"github.com/gymflow/gymflow/internal/infrastructure/repository"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	planRepo         membership.PlanRepository
	recordRepo       membership.RecordRepository
	planChangeRepo   membership.PlanChangeRepository
	cancellationRepo membership.CancellationRepository
	eventRepo        membership.EventRepository
	receiptRepo      membership.ReceiptRepository
	memberRepo       member.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		planRepo:         repository.NewPlanRepository(db, log),
		recordRepo:       repository.NewMembershipRecordRepository(db, log),
		planChangeRepo:   repository.NewPlanChangeRequestRepository(db, log),
		cancellationRepo: repository.NewCancellationRepository(db, log),
		eventRepo:        repository.NewMembershipEventRepository(db, log),
		receiptRepo:      repository.NewReceiptRepository(db, log),
		memberRepo:       repository.NewMemberRepository(db, log),
	}
}
