package dto

import "time"

type PlanDTO struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	PriceMinorUnits int64    `json:"price_minor_units"`
	Currency        string   `json:"currency"`
	DurationMonths  int      `json:"duration_months"`
	DurationDays    int      `json:"duration_days"`
	Features        []string `json:"features"`
	Description     string   `json:"description,omitempty"`
	DescriptionHTML string   `json:"description_html,omitempty"`
	Retired         bool     `json:"retired"`
}

type PauseWindowDTO struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationDays int       `json:"duration_days"`
}

// MembershipDTO is one record version plus the figures derived from it at read time.
type MembershipDTO struct {
	MemberID                 uint            `json:"member_id"`
	Version                  int             `json:"version"`
	PlanID                   uint            `json:"plan_id"`
	PlanName                 string          `json:"plan_name,omitempty"`
	Status                   string          `json:"status"`
	EffectiveStatus          string          `json:"effective_status"`
	StartDate                time.Time       `json:"start_date"`
	EndDate                  time.Time       `json:"end_date"`
	AutoRenew                bool            `json:"auto_renew"`
	PauseWindow              *PauseWindowDTO `json:"pause_window,omitempty"`
	DaysRemaining            int             `json:"days_remaining"`
	RemainingValueMinorUnits int64           `json:"remaining_value_minor_units"`
	HasAccess                bool            `json:"has_access"`
	CreatedAt                time.Time       `json:"created_at"`
}

type PlanChangeDTO struct {
	RequestID          string    `json:"request_id"`
	FromPlanID         uint      `json:"from_plan_id"`
	ToPlanID           uint      `json:"to_plan_id"`
	DaysRemaining      int       `json:"days_remaining"`
	DaysTotal          int       `json:"days_total"`
	CurrentPlanBalance int64     `json:"current_plan_balance"`
	NewPlanPrice       int64     `json:"new_plan_price"`
	BalanceDifference  int64     `json:"balance_difference"`
	PaymentRequired    bool      `json:"payment_required"`
	AmountDue          int64     `json:"amount_due"`
	CreditForfeited    int64     `json:"credit_forfeited"`
	Status             string    `json:"status"`
	ExpiresAt          time.Time `json:"expires_at"`
}

type InitiatePlanChangeDTO struct {
	RequestID       string    `json:"request_id"`
	PaymentRequired bool      `json:"payment_required"`
	AmountDue       int64     `json:"amount_due"`
	ConfirmTarget   string    `json:"confirm_target"`
	ExpiresAt       time.Time `json:"expires_at"`
}

type CancellationDTO struct {
	ID                     uint      `json:"id"`
	MemberID               uint      `json:"member_id"`
	PlanID                 uint      `json:"plan_id"`
	RecordVersion          int       `json:"record_version"`
	DaysLeftAtCancellation int       `json:"days_left_at_cancellation"`
	ValueLostMinorUnits    int64     `json:"value_lost_minor_units"`
	Reason                 string    `json:"reason,omitempty"`
	CancelledAt            time.Time `json:"cancelled_at"`
}

// Access denial reasons.
const (
	AccessReasonNoMembership = "no_membership"
	AccessReasonPaused       = "paused"
	AccessReasonCancelled    = "cancelled"
	AccessReasonExpired      = "expired"
)

type AccessDTO struct {
	MemberID        uint       `json:"member_id"`
	Allowed         bool       `json:"allowed"`
	EffectiveStatus string     `json:"effective_status,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
}

type HistoryDTO struct {
	Versions []*MembershipDTO `json:"versions"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type EventDTO struct {
	ID            uint           `json:"id"`
	RecordVersion int            `json:"record_version"`
	EventType     string         `json:"event_type"`
	OldPlanID     *uint          `json:"old_plan_id,omitempty"`
	NewPlanID     *uint          `json:"new_plan_id,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

type SeedCatalogResultDTO struct {
	Created []string `json:"created"`
	Skipped []string `json:"skipped"`
	Retired []string `json:"retired"`
}
