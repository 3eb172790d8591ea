package membership

import (
	"time"

	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
)

// PauseWindow is the interval during which a paused membership is frozen.
type PauseWindow struct {
	Start        time.Time
	End          time.Time
	DurationDays int
}

// Lapsed reports whether the pause has run its course at now.
func (w PauseWindow) Lapsed(now time.Time) bool {
	return !w.End.After(now)
}

// DaysLeft counts started pause days still ahead at now.
func (w PauseWindow) DaysLeft(now time.Time) int {
	return daysBetween(now, w.End)
}

// Record is one immutable version of a member's membership. Every state
// transition produces a successor with the next version; the highest version is current.
type Record struct {
	id          uint
	memberID    uint
	planID      uint
	version     int
	startDate   time.Time
	endDate     time.Time
	status      vo.Status
	autoRenew   bool
	pauseWindow *PauseWindow
	createdAt   time.Time
}

// NewRecord starts the first term of a member on plan.
func NewRecord(memberID uint, plan *Plan, autoRenew bool, now time.Time) (*Record, error) {
	if memberID == 0 {
		return nil, invalidInput("member ID is required")
	}
	if plan == nil || plan.ID() == 0 {
		return nil, invalidInput("plan is required")
	}
	return &Record{
		memberID:  memberID,
		planID:    plan.ID(),
		version:   1,
		startDate: now,
		endDate:   plan.TermEnd(now),
		status:    vo.StatusActive,
		autoRenew: autoRenew,
		createdAt: now,
	}, nil
}

// ReconstructRecord rebuilds a record version from persistence.
func ReconstructRecord(
	id, memberID, planID uint,
	version int,
	startDate, endDate time.Time,
	status vo.Status,
	autoRenew bool,
	pauseWindow *PauseWindow,
	createdAt time.Time,
) (*Record, error) {
	if memberID == 0 || planID == 0 {
		return nil, invalidInput("record requires member and plan")
	}
	if version < 1 {
		return nil, invalidInput("record version must be positive, got %d", version)
	}
	if !status.IsValid() {
		return nil, invalidInput("invalid membership status: %s", status)
	}
	if !endDate.After(startDate) {
		return nil, invalidInput("end date must be after start date")
	}
	if status == vo.StatusPaused && pauseWindow == nil {
		return nil, invalidInput("paused record %d/%d has no pause window", memberID, version)
	}
	return &Record{
		id:          id,
		memberID:    memberID,
		planID:      planID,
		version:     version,
		startDate:   startDate,
		endDate:     endDate,
		status:      status,
		autoRenew:   autoRenew,
		pauseWindow: pauseWindow,
		createdAt:   createdAt,
	}, nil
}

func (r *Record) ID() uint             { return r.id }
func (r *Record) MemberID() uint       { return r.memberID }
func (r *Record) PlanID() uint         { return r.planID }
func (r *Record) Version() int         { return r.version }
func (r *Record) StartDate() time.Time { return r.startDate }
func (r *Record) EndDate() time.Time   { return r.endDate }
func (r *Record) Status() vo.Status    { return r.status }
func (r *Record) AutoRenew() bool      { return r.autoRenew }
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// PauseWindow returns a copy of the pause window, or nil when not paused.
func (r *Record) PauseWindow() *PauseWindow {
	if r.pauseWindow == nil {
		return nil
	}
	w := *r.pauseWindow
	return &w
}

func (r *Record) SetID(id uint) {
	r.id = id
}

// EffectiveStatus is the status readers should act on. A paused record whose
// window has lapsed is active.
func (r *Record) EffectiveStatus(now time.Time) vo.Status {
	if r.status == vo.StatusPaused && r.pauseWindow != nil && r.pauseWindow.Lapsed(now) {
		return vo.StatusActive
	}
	return r.status
}

// HasEnded reports whether the paid term is over.
func (r *Record) HasEnded(now time.Time) bool {
	return !r.endDate.After(now)
}

// GrantsAccess reports whether the member may use paid features at now.
func (r *Record) GrantsAccess(now time.Time) bool {
	return r.EffectiveStatus(now) == vo.StatusActive && !r.HasEnded(now)
}

// DaysRemaining counts started days left in the term, never negative.
func (r *Record) DaysRemaining(now time.Time) int {
	return daysBetween(now, r.endDate)
}

// NeedsAutoResume reports whether the stored version is a lapsed pause that must be
// closed before any other transition is recorded.
func (r *Record) NeedsAutoResume(now time.Time) bool {
	return r.status == vo.StatusPaused && r.EffectiveStatus(now) == vo.StatusActive
}

func (r *Record) successor(now time.Time) *Record {
	next := *r
	next.id = 0
	next.version = r.version + 1
	next.createdAt = now
	next.pauseWindow = r.PauseWindow()
	return &next
}

// AutoResume closes a lapsed pause without touching the end date.
func (r *Record) AutoResume(now time.Time) (*Record, error) {
	if !r.NeedsAutoResume(now) {
		return nil, invalidTransition("auto-resume", r.status)
	}
	next := r.successor(now)
	next.status = vo.StatusActive
	next.pauseWindow = nil
	return next, nil
}

// Pause freezes the membership for days and extends the end date by the same amount.
func (r *Record) Pause(days int, now time.Time) (*Record, error) {
	if days <= 0 {
		return nil, invalidInput("pause duration must be positive")
	}
	if !r.EffectiveStatus(now).CanPause() {
		return nil, invalidTransition("pause", r.status)
	}
	if r.HasEnded(now) {
		return nil, invalidTransition("pause", endedStatus{})
	}
	next := r.successor(now)
	next.status = vo.StatusPaused
	next.pauseWindow = &PauseWindow{
		Start:        now,
		End:          now.AddDate(0, 0, days),
		DurationDays: days,
	}
	next.endDate = r.endDate.AddDate(0, 0, days)
	return next, nil
}

// Resume ends a pause early. Unused pause days are not handed back.
func (r *Record) Resume(now time.Time) (*Record, error) {
	if r.EffectiveStatus(now) != vo.StatusPaused {
		return nil, invalidTransition("resume", r.EffectiveStatus(now))
	}
	next := r.successor(now)
	next.status = vo.StatusActive
	next.pauseWindow = nil
	return next, nil
}

// Cancel freezes the membership. Dates are kept for the audit trail.
func (r *Record) Cancel(now time.Time) (*Record, error) {
	if !r.EffectiveStatus(now).CanCancel() {
		return nil, invalidTransition("cancel", r.status)
	}
	next := r.successor(now)
	next.status = vo.StatusCancelled
	next.pauseWindow = nil
	return next, nil
}

// ChangePlan starts a fresh term of plan at now.
func (r *Record) ChangePlan(plan *Plan, now time.Time) (*Record, error) {
	if !r.EffectiveStatus(now).CanChangePlan() {
		return nil, invalidTransition("change plan of", r.EffectiveStatus(now))
	}
	return r.restart(plan, r.autoRenew, now), nil
}

// Reactivate starts a brand new term after a cancellation. Nothing carries over
// from the cancelled plan.
func (r *Record) Reactivate(plan *Plan, autoRenew bool, now time.Time) (*Record, error) {
	if !r.status.CanReactivate() {
		return nil, invalidTransition("reactivate", r.status)
	}
	return r.restart(plan, autoRenew, now), nil
}

// SetAutoRenew records a change of the renewal flag.
func (r *Record) SetAutoRenew(autoRenew bool, now time.Time) (*Record, error) {
	if r.status == vo.StatusCancelled {
		return nil, invalidTransition("change auto-renew of", r.status)
	}
	if r.autoRenew == autoRenew {
		return nil, invalidInput("auto-renew is already %t", autoRenew)
	}
	next := r.successor(now)
	next.autoRenew = autoRenew
	return next, nil
}

func (r *Record) restart(plan *Plan, autoRenew bool, now time.Time) *Record {
	next := r.successor(now)
	next.planID = plan.ID()
	next.status = vo.StatusActive
	next.pauseWindow = nil
	next.startDate = now
	next.endDate = plan.TermEnd(now)
	next.autoRenew = autoRenew
	return next
}

type endedStatus struct{}

func (endedStatus) String() string { return "ended" }
