package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/gymflow/gymflow/internal/domain/membership"
	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
	"github.com/gymflow/gymflow/internal/shared/biztime"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

// MutateFunc runs inside the member lock and transaction. current is the member's
// latest record with any lapsed pause already closed, or nil when the member has none.
type MutateFunc func(ctx context.Context, current *membership.Record, now time.Time) error

// MemberWriter is the single path through which membership records change.
// It holds the member lock for the whole operation and writes every new version
// together with its audit event in one transaction.
type MemberWriter struct {
	locker    MemberLocker
	txManager TransactionManager
	records   membership.RecordRepository
	requests  membership.PlanChangeRepository
	events    membership.EventRepository
	receipts  membership.ReceiptRepository
	clock     biztime.Clock
	logger    logger.Interface
}

func NewMemberWriter(
	locker MemberLocker,
	txManager TransactionManager,
	records membership.RecordRepository,
	requests membership.PlanChangeRepository,
	events membership.EventRepository,
	receipts membership.ReceiptRepository,
	clock biztime.Clock,
	logger logger.Interface,
) *MemberWriter {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	return &MemberWriter{
		locker:    locker,
		txManager: txManager,
		records:   records,
		requests:  requests,
		events:    events,
		receipts:  receipts,
		clock:     clock,
		logger:    logger,
	}
}

func (w *MemberWriter) Now() time.Time {
	return w.clock.Now()
}

// Mutate locks memberID, opens a transaction and hands fn the current record.
// Errors returned by fn roll the transaction back.
func (w *MemberWriter) Mutate(ctx context.Context, memberID uint, fn MutateFunc) error {
	unlock, err := w.locker.Lock(ctx, memberID)
	if err != nil {
		w.logger.Warnw("member lock not acquired", "member_id", memberID, "error", err)
		return err
	}
	defer unlock()

	now := w.clock.Now()
	return w.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, err := w.records.GetCurrent(txCtx, memberID)
		if err != nil {
			return fmt.Errorf("failed to load membership: %w", err)
		}

		if current != nil && current.NeedsAutoResume(now) {
			resumed, err := current.AutoResume(now)
			if err != nil {
				return err
			}
			if err := w.Append(txCtx, vo.EventResumed, current, resumed, map[string]any{"automatic": true}); err != nil {
				return err
			}
			w.logger.Infow("lapsed pause closed", "member_id", memberID, "version", resumed.Version())
			current = resumed
		}

		return fn(txCtx, current, now)
	})
}

// Append stores next as the member's new current version and records the event.
// Live plan change requests are superseded because they were priced against prev.
func (w *MemberWriter) Append(ctx context.Context, eventType vo.EventType, prev, next *membership.Record, metadata map[string]any) error {
	if err := w.records.Append(ctx, next); err != nil {
		return fmt.Errorf("failed to append membership version: %w", err)
	}

	if _, err := w.requests.ExpireLiveByMember(ctx, next.MemberID()); err != nil {
		return fmt.Errorf("failed to supersede plan change requests: %w", err)
	}

	if err := w.events.Create(ctx, membership.NewEvent(eventType, prev, next, metadata)); err != nil {
		return fmt.Errorf("failed to record membership event: %w", err)
	}

	return nil
}

// Redeem consumes a verified payment receipt inside the transaction in ctx, so a
// rolled back operation leaves the receipt unspent. A receipt spent before yields
// membership.ErrReceiptRedeemed.
func (w *MemberWriter) Redeem(ctx context.Context, receiptKey string, memberID uint, reference string, amount int64, now time.Time) error {
	receipt, err := membership.NewRedeemedReceipt(receiptKey, memberID, reference, amount, now)
	if err != nil {
		return err
	}
	return w.receipts.Redeem(ctx, receipt)
}
