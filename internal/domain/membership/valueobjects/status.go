package valueobjects

// Status is the stored lifecycle state of a membership record version.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return ValidStatuses[s]
}

func (s Status) CanPause() bool {
	return s == StatusActive
}

func (s Status) CanResume() bool {
	return s == StatusPaused
}

func (s Status) CanCancel() bool {
	return s == StatusActive || s == StatusPaused
}

func (s Status) CanReactivate() bool {
	return s == StatusCancelled
}

func (s Status) CanChangePlan() bool {
	return s == StatusActive
}

var ValidStatuses = map[Status]bool{
	StatusActive:    true,
	StatusPaused:    true,
	StatusCancelled: true,
}
