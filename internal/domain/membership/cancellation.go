package membership

import (
	"strings"
	"time"
)

const maxCancellationReasonLength = 500

// CancellationRecord discloses what a member gave up when cancelling. Append-only.
type CancellationRecord struct {
	id                     uint
	memberID               uint
	planID                 uint
	recordVersion          int
	daysLeftAtCancellation int
	valueLostMinorUnits    int64
	reason                 string
	cancelledAt            time.Time
}

// NewCancellationRecord values the unused time of record on plan at now.
// cancelled is the version that carries the cancelled status.
func NewCancellationRecord(record, cancelled *Record, plan *Plan, reason string, now time.Time) (*CancellationRecord, error) {
	if record.PlanID() != plan.ID() {
		return nil, invalidInput("record is on plan %d, not %d", record.PlanID(), plan.ID())
	}
	reason = strings.TrimSpace(reason)
	if len(reason) > maxCancellationReasonLength {
		return nil, invalidInput("reason must be at most %d characters", maxCancellationReasonLength)
	}
	days, value := ValueOfRemainingTime(record, plan, now)
	return &CancellationRecord{
		memberID:               record.MemberID(),
		planID:                 plan.ID(),
		recordVersion:          cancelled.Version(),
		daysLeftAtCancellation: days,
		valueLostMinorUnits:    value,
		reason:                 reason,
		cancelledAt:            now,
	}, nil
}

func ReconstructCancellationRecord(
	id, memberID, planID uint,
	recordVersion, daysLeft int,
	valueLost int64,
	reason string,
	cancelledAt time.Time,
) *CancellationRecord {
	return &CancellationRecord{
		id:                     id,
		memberID:               memberID,
		planID:                 planID,
		recordVersion:          recordVersion,
		daysLeftAtCancellation: daysLeft,
		valueLostMinorUnits:    valueLost,
		reason:                 reason,
		cancelledAt:            cancelledAt,
	}
}

func (c *CancellationRecord) ID() uint                    { return c.id }
func (c *CancellationRecord) MemberID() uint              { return c.memberID }
func (c *CancellationRecord) PlanID() uint                { return c.planID }
func (c *CancellationRecord) RecordVersion() int          { return c.recordVersion }
func (c *CancellationRecord) DaysLeftAtCancellation() int { return c.daysLeftAtCancellation }
func (c *CancellationRecord) ValueLostMinorUnits() int64  { return c.valueLostMinorUnits }
func (c *CancellationRecord) Reason() string              { return c.reason }
func (c *CancellationRecord) CancelledAt() time.Time      { return c.cancelledAt }

func (c *CancellationRecord) SetID(id uint) {
	c.id = id
}
