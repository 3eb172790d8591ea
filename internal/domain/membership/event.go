package membership

import (
	"time"

	vo "github.com/gymflow/gymflow/internal/domain/membership/valueobjects"
)

// Event is the audit entry written alongside every record version.
type Event struct {
	id            uint
	memberID      uint
	recordVersion int
	eventType     vo.EventType
	oldPlanID     *uint
	newPlanID     *uint
	metadata      map[string]any
	createdAt     time.Time
}

// NewEvent describes the transition from prev (nil for a first signup) to next.
func NewEvent(eventType vo.EventType, prev, next *Record, metadata map[string]any) *Event {
	e := &Event{
		memberID:      next.MemberID(),
		recordVersion: next.Version(),
		eventType:     eventType,
		metadata:      metadata,
		createdAt:     next.CreatedAt(),
	}
	if e.metadata == nil {
		e.metadata = make(map[string]any)
	}
	newPlan := next.PlanID()
	e.newPlanID = &newPlan
	if prev != nil {
		oldPlan := prev.PlanID()
		e.oldPlanID = &oldPlan
	}
	return e
}

func ReconstructEvent(
	id, memberID uint,
	recordVersion int,
	eventType vo.EventType,
	oldPlanID, newPlanID *uint,
	metadata map[string]any,
	createdAt time.Time,
) *Event {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &Event{
		id:            id,
		memberID:      memberID,
		recordVersion: recordVersion,
		eventType:     eventType,
		oldPlanID:     oldPlanID,
		newPlanID:     newPlanID,
		metadata:      metadata,
		createdAt:     createdAt,
	}
}

func (e *Event) ID() uint                 { return e.id }
func (e *Event) MemberID() uint           { return e.memberID }
func (e *Event) RecordVersion() int       { return e.recordVersion }
func (e *Event) EventType() vo.EventType  { return e.eventType }
func (e *Event) OldPlanID() *uint         { return e.oldPlanID }
func (e *Event) NewPlanID() *uint         { return e.newPlanID }
func (e *Event) Metadata() map[string]any { return e.metadata }
func (e *Event) CreatedAt() time.Time     { return e.createdAt }

func (e *Event) SetID(id uint) {
	e.id = id
}
