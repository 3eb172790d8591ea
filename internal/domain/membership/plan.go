package membership

import (
	"fmt"
	"strings"
	"time"
)

// DaysPerBillingMonth is the fixed month length used to turn plan durations into days.
const DaysPerBillingMonth = 30

// Plan is a catalog entry. Price, duration and features never change after creation;
// a plan can only be retired.
type Plan struct {
	id              uint
	name            string
	priceMinorUnits int64
	durationMonths  int
	features        []string
	description     string
	currency        string
	retired         bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPlan(name string, priceMinorUnits int64, durationMonths int, features []string, description, currency string) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInput("plan name is required")
	}
	if priceMinorUnits < 0 {
		return nil, invalidInput("plan price cannot be negative")
	}
	if durationMonths < 0 {
		return nil, invalidInput("plan duration cannot be negative")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, invalidInput("currency must be a 3-letter ISO code, got %q", currency)
	}

	now := time.Now().UTC()
	return &Plan{
		name:            name,
		priceMinorUnits: priceMinorUnits,
		durationMonths:  durationMonths,
		features:        append([]string(nil), features...),
		description:     description,
		currency:        currency,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(
	id uint,
	name string,
	priceMinorUnits int64,
	durationMonths int,
	features []string,
	description, currency string,
	retired bool,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, invalidInput("plan ID cannot be zero")
	}
	if durationMonths < 0 || priceMinorUnits < 0 {
		return nil, invalidInput("plan %d has negative price or duration", id)
	}
	return &Plan{
		id:              id,
		name:            name,
		priceMinorUnits: priceMinorUnits,
		durationMonths:  durationMonths,
		features:        features,
		description:     description,
		currency:        currency,
		retired:         retired,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (p *Plan) ID() uint               { return p.id }
func (p *Plan) Name() string           { return p.name }
func (p *Plan) PriceMinorUnits() int64 { return p.priceMinorUnits }
func (p *Plan) DurationMonths() int    { return p.durationMonths }
func (p *Plan) Description() string    { return p.description }
func (p *Plan) Currency() string       { return p.currency }
func (p *Plan) IsRetired() bool        { return p.retired }
func (p *Plan) CreatedAt() time.Time   { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time   { return p.updatedAt }
func (p *Plan) IsSingleDay() bool      { return p.durationMonths == 0 }

// Features returns a copy of the ordered feature list.
func (p *Plan) Features() []string {
	return append([]string(nil), p.features...)
}

// DurationDays is the plan length used for proration. Single-day plans report 0.
func (p *Plan) DurationDays() int {
	return p.durationMonths * DaysPerBillingMonth
}

// TermEnd returns the end date of a term of this plan that starts at start.
func (p *Plan) TermEnd(start time.Time) time.Time {
	if p.IsSingleDay() {
		return start.AddDate(0, 0, 1)
	}
	return start.AddDate(0, p.durationMonths, 0)
}

// PurchaseReference identifies an outright purchase of this plan on a payment receipt.
func (p *Plan) PurchaseReference() string {
	return fmt.Sprintf("plan:%d", p.id)
}

// Retire hides the plan from the catalog. It stays readable for existing records.
func (p *Plan) Retire() {
	if p.retired {
		return
	}
	p.retired = true
	p.updatedAt = time.Now().UTC()
}

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return invalidInput("plan ID is already set")
	}
	if id == 0 {
		return invalidInput("plan ID cannot be zero")
	}
	p.id = id
	return nil
}
