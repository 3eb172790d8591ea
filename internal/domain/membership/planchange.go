package membership

import (
	"time"

	"github.com/google/uuid"

	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
)

// PlanChangeRequest holds a priced plan switch between calculate and confirm.
// Its figures are frozen at calculation time and only valid until expiresAt.
type PlanChangeRequest struct {
	id                   uint
	requestID            string
	memberID             uint
	fromPlanID           uint
	toPlanID             uint
	baseRecordVersion    int
	daysRemaining        int
	daysTotal            int
	currentPlanBalance   int64
	newPlanPrice         int64
	balanceDifference    int64
	paymentRequired      bool
	status               vo.PlanChangeStatus
	createdAt            time.Time
	expiresAt            time.Time
	confirmedAt          *time.Time
	appliedAt            *time.Time
	appliedRecordVersion *int
}

// NewPlanChangeRequest stores the result of a calculation made against base.
func NewPlanChangeRequest(base *Record, result ProrationResult, now time.Time, ttl time.Duration) (*PlanChangeRequest, error) {
	if base == nil {
		return nil, invalidInput("base record is required")
	}
	if ttl <= 0 {
		return nil, invalidInput("plan change TTL must be positive")
	}
	return &PlanChangeRequest{
		requestID:          uuid.NewString(),
		memberID:           base.MemberID(),
		fromPlanID:         result.FromPlanID,
		toPlanID:           result.ToPlanID,
		baseRecordVersion:  base.Version(),
		daysRemaining:      result.DaysRemaining,
		daysTotal:          result.DaysTotal,
		currentPlanBalance: result.CurrentPlanBalance,
		newPlanPrice:       result.NewPlanPrice,
		balanceDifference:  result.BalanceDifference,
		paymentRequired:    result.PaymentRequired,
		status:             vo.PlanChangeCalculated,
		createdAt:          now,
		expiresAt:          now.Add(ttl),
	}, nil
}

// ReconstructPlanChangeRequest rebuilds a request from persistence.
func ReconstructPlanChangeRequest(
	id uint,
	requestID string,
	memberID, fromPlanID, toPlanID uint,
	baseRecordVersion, daysRemaining, daysTotal int,
	currentPlanBalance, newPlanPrice, balanceDifference int64,
	paymentRequired bool,
	status vo.PlanChangeStatus,
	createdAt, expiresAt time.Time,
	confirmedAt, appliedAt *time.Time,
	appliedRecordVersion *int,
) (*PlanChangeRequest, error) {
	if _, err := uuid.Parse(requestID); err != nil {
		return nil, invalidInput("malformed request ID %q", requestID)
	}
	if !vo.ValidPlanChangeStatuses[status] {
		return nil, invalidInput("invalid plan change status: %s", status)
	}
	return &PlanChangeRequest{
		id:                   id,
		requestID:            requestID,
		memberID:             memberID,
		fromPlanID:           fromPlanID,
		toPlanID:             toPlanID,
		baseRecordVersion:    baseRecordVersion,
		daysRemaining:        daysRemaining,
		daysTotal:            daysTotal,
		currentPlanBalance:   currentPlanBalance,
		newPlanPrice:         newPlanPrice,
		balanceDifference:    balanceDifference,
		paymentRequired:      paymentRequired,
		status:               status,
		createdAt:            createdAt,
		expiresAt:            expiresAt,
		confirmedAt:          confirmedAt,
		appliedAt:            appliedAt,
		appliedRecordVersion: appliedRecordVersion,
	}, nil
}

func (r *PlanChangeRequest) ID() uint                    { return r.id }
func (r *PlanChangeRequest) RequestID() string           { return r.requestID }
func (r *PlanChangeRequest) MemberID() uint              { return r.memberID }
func (r *PlanChangeRequest) FromPlanID() uint            { return r.fromPlanID }
func (r *PlanChangeRequest) ToPlanID() uint              { return r.toPlanID }
func (r *PlanChangeRequest) BaseRecordVersion() int      { return r.baseRecordVersion }
func (r *PlanChangeRequest) DaysRemaining() int          { return r.daysRemaining }
func (r *PlanChangeRequest) DaysTotal() int              { return r.daysTotal }
func (r *PlanChangeRequest) CurrentPlanBalance() int64   { return r.currentPlanBalance }
func (r *PlanChangeRequest) NewPlanPrice() int64         { return r.newPlanPrice }
func (r *PlanChangeRequest) BalanceDifference() int64    { return r.balanceDifference }
func (r *PlanChangeRequest) PaymentRequired() bool       { return r.paymentRequired }
func (r *PlanChangeRequest) Status() vo.PlanChangeStatus { return r.status }
func (r *PlanChangeRequest) CreatedAt() time.Time        { return r.createdAt }
func (r *PlanChangeRequest) ExpiresAt() time.Time        { return r.expiresAt }
func (r *PlanChangeRequest) ConfirmedAt() *time.Time     { return r.confirmedAt }
func (r *PlanChangeRequest) AppliedAt() *time.Time       { return r.appliedAt }
func (r *PlanChangeRequest) AppliedRecordVersion() *int  { return r.appliedRecordVersion }

func (r *PlanChangeRequest) SetID(id uint) {
	r.id = id
}

// Result returns the frozen proration figures.
func (r *PlanChangeRequest) Result() ProrationResult {
	return ProrationResult{
		FromPlanID:         r.fromPlanID,
		ToPlanID:           r.toPlanID,
		DaysRemaining:      r.daysRemaining,
		DaysTotal:          r.daysTotal,
		CurrentPlanBalance: r.currentPlanBalance,
		NewPlanPrice:       r.newPlanPrice,
		BalanceDifference:  r.balanceDifference,
		PaymentRequired:    r.paymentRequired,
	}
}

func (r *PlanChangeRequest) AmountDue() int64 {
	return r.Result().AmountDue()
}

// ConfirmTarget names the proof the confirm step requires.
func (r *PlanChangeRequest) ConfirmTarget() vo.ConfirmTarget {
	if r.paymentRequired {
		return vo.ConfirmWithPayment
	}
	return vo.ConfirmWithCredentials
}

// IsExpired reports whether the request can no longer move forward at now.
// Applied requests never expire.
func (r *PlanChangeRequest) IsExpired(now time.Time) bool {
	if r.status == vo.PlanChangeApplied {
		return false
	}
	return r.status == vo.PlanChangeExpired || !now.Before(r.expiresAt)
}

// Expire marks a live request as expired. It reports whether the status changed.
func (r *PlanChangeRequest) Expire() bool {
	if !r.status.IsLive() {
		return false
	}
	r.status = vo.PlanChangeExpired
	return true
}

// Confirm moves a calculated request to confirmed. Confirming again is a no-op.
func (r *PlanChangeRequest) Confirm(now time.Time) error {
	if r.IsExpired(now) {
		return ErrRequestExpired
	}
	switch r.status {
	case vo.PlanChangeConfirmed:
		return nil
	case vo.PlanChangeCalculated:
		r.status = vo.PlanChangeConfirmed
		r.confirmedAt = &now
		return nil
	default:
		return invalidTransition("confirm", r.status)
	}
}

// CanApply checks the request is confirmed and still within its TTL.
func (r *PlanChangeRequest) CanApply(now time.Time) error {
	if r.IsExpired(now) {
		return ErrRequestExpired
	}
	if r.status != vo.PlanChangeConfirmed {
		return invalidTransition("apply", r.status)
	}
	return nil
}

// MarkApplied records the record version the request produced.
func (r *PlanChangeRequest) MarkApplied(recordVersion int, now time.Time) error {
	if err := r.CanApply(now); err != nil {
		return err
	}
	r.status = vo.PlanChangeApplied
	r.appliedAt = &now
	r.appliedRecordVersion = &recordVersion
	return nil
}
