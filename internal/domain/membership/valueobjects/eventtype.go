package valueobjects

type EventType string

const (
	EventCreated          EventType = "created"
	EventPlanChanged      EventType = "plan_changed"
	EventPaused           EventType = "paused"
	EventResumed          EventType = "resumed"
	EventCancelled        EventType = "cancelled"
	EventReactivated      EventType = "reactivated"
	EventAutoRenewChanged EventType = "auto_renew_changed"
)

func (t EventType) String() string {
	return string(t)
}

var ValidEventTypes = map[EventType]bool{
	EventCreated:          true,
	EventPlanChanged:      true,
	EventPaused:           true,
	EventResumed:          true,
	EventCancelled:        true,
	EventReactivated:      true,
	EventAutoRenewChanged: true,
}
