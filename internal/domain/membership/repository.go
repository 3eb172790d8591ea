package membership

import (
	"context"
)

// Lookups return (nil, nil) when nothing matches.

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByName(ctx context.Context, name string) (*Plan, error)
	List(ctx context.Context, includeRetired bool) ([]*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	// Delete fails with ErrPlanInUse while any record references the plan.
	Delete(ctx context.Context, id uint) error
}

type RecordRepository interface {
	// GetCurrent returns the highest version for the member.
	GetCurrent(ctx context.Context, memberID uint) (*Record, error)
	GetByVersion(ctx context.Context, memberID uint, version int) (*Record, error)
	// Append inserts a new version. A version that already exists yields ErrConflict.
	Append(ctx context.Context, record *Record) error
	ListHistory(ctx context.Context, memberID uint, page, pageSize int) ([]*Record, int64, error)
	CountByPlanID(ctx context.Context, planID uint) (int64, error)
}

type PlanChangeRepository interface {
	Create(ctx context.Context, request *PlanChangeRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*PlanChangeRequest, error)
	Update(ctx context.Context, request *PlanChangeRequest) error
	// ExpireLiveByMember marks every calculated or confirmed request of the member expired.
	ExpireLiveByMember(ctx context.Context, memberID uint) (int64, error)
}

type CancellationRepository interface {
	Create(ctx context.Context, record *CancellationRecord) error
	ListByMember(ctx context.Context, memberID uint) ([]*CancellationRecord, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	ListByMember(ctx context.Context, memberID uint) ([]*Event, error)
}

type ReceiptRepository interface {
	// Redeem stores receipt. A key redeemed before yields ErrReceiptRedeemed.
	Redeem(ctx context.Context, receipt *RedeemedReceipt) error
	GetByKey(ctx context.Context, receiptKey string) (*RedeemedReceipt, error)
}
