package valueobjects

// PlanChangeStatus tracks a plan change request through calculate, initiate and confirm.
type PlanChangeStatus string

const (
	PlanChangeCalculated PlanChangeStatus = "calculated"
	PlanChangeConfirmed  PlanChangeStatus = "confirmed"
	PlanChangeApplied    PlanChangeStatus = "applied"
	PlanChangeExpired    PlanChangeStatus = "expired"
)

func (s PlanChangeStatus) String() string {
	return string(s)
}

// IsLive reports whether the request can still move forward.
func (s PlanChangeStatus) IsLive() bool {
	return s == PlanChangeCalculated || s == PlanChangeConfirmed
}

var ValidPlanChangeStatuses = map[PlanChangeStatus]bool{
	PlanChangeCalculated: true,
	PlanChangeConfirmed:  true,
	PlanChangeApplied:    true,
	PlanChangeExpired:    true,
}

// ConfirmTarget tells the caller what proof the confirm step expects.
type ConfirmTarget string

const (
	ConfirmWithPayment     ConfirmTarget = "payment"
	ConfirmWithCredentials ConfirmTarget = "credentials"
)
