package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/domain/membership"
)

// ToPlanDTO converts a plan. descriptionHTML is the rendered description, if any.
func ToPlanDTO(plan *membership.Plan, descriptionHTML string) *PlanDTO {
	if plan == nil {
		return nil
	}
	return &PlanDTO{
		ID:              plan.ID(),
		Name:            plan.Name(),
		PriceMinorUnits: plan.PriceMinorUnits(),
		Currency:        plan.Currency(),
		DurationMonths:  plan.DurationMonths(),
		DurationDays:    plan.DurationDays(),
		Features:        plan.Features(),
		Description:     plan.Description(),
		DescriptionHTML: descriptionHTML,
		Retired:         plan.IsRetired(),
	}
}

// ToMembershipDTO converts record as seen at now. plan may be nil when only the
// stored fields are needed, in which case the remaining value is reported as 0.
func ToMembershipDTO(record *membership.Record, plan *membership.Plan, now time.Time) *MembershipDTO {
	if record == nil {
		return nil
	}

	out := &MembershipDTO{
		MemberID:        record.MemberID(),
		Version:         record.Version(),
		PlanID:          record.PlanID(),
		Status:          record.Status().String(),
		EffectiveStatus: record.EffectiveStatus(now).String(),
		StartDate:       record.StartDate(),
		EndDate:         record.EndDate(),
		AutoRenew:       record.AutoRenew(),
		DaysRemaining:   record.DaysRemaining(now),
		HasAccess:       record.GrantsAccess(now),
		CreatedAt:       record.CreatedAt(),
	}

	if w := record.PauseWindow(); w != nil {
		out.PauseWindow = &PauseWindowDTO{
			Start:        w.Start,
			End:          w.End,
			DurationDays: w.DurationDays,
		}
	}

	if plan != nil && plan.ID() == record.PlanID() {
		out.PlanName = plan.Name()
		_, out.RemainingValueMinorUnits = membership.ValueOfRemainingTime(record, plan, now)
	}

	return out
}

// ToMembershipDTOs converts a history page. plans is keyed by plan id.
func ToMembershipDTOs(records []*membership.Record, plans map[uint]*membership.Plan, now time.Time) []*MembershipDTO {
	return lo.Map(records, func(r *membership.Record, _ int) *MembershipDTO {
		return ToMembershipDTO(r, plans[r.PlanID()], now)
	})
}

func ToPlanChangeDTO(req *membership.PlanChangeRequest) *PlanChangeDTO {
	if req == nil {
		return nil
	}
	result := req.Result()
	return &PlanChangeDTO{
		RequestID:          req.RequestID(),
		FromPlanID:         result.FromPlanID,
		ToPlanID:           result.ToPlanID,
		DaysRemaining:      result.DaysRemaining,
		DaysTotal:          result.DaysTotal,
		CurrentPlanBalance: result.CurrentPlanBalance,
		NewPlanPrice:       result.NewPlanPrice,
		BalanceDifference:  result.BalanceDifference,
		PaymentRequired:    result.PaymentRequired,
		AmountDue:          result.AmountDue(),
		CreditForfeited:    result.CreditForfeited(),
		Status:             req.Status().String(),
		ExpiresAt:          req.ExpiresAt(),
	}
}

func ToInitiatePlanChangeDTO(req *membership.PlanChangeRequest) *InitiatePlanChangeDTO {
	return &InitiatePlanChangeDTO{
		RequestID:       req.RequestID(),
		PaymentRequired: req.PaymentRequired(),
		AmountDue:       req.AmountDue(),
		ConfirmTarget:   string(req.ConfirmTarget()),
		ExpiresAt:       req.ExpiresAt(),
	}
}

func ToCancellationDTO(c *membership.CancellationRecord) *CancellationDTO {
	if c == nil {
		return nil
	}
	return &CancellationDTO{
		ID:                     c.ID(),
		MemberID:               c.MemberID(),
		PlanID:                 c.PlanID(),
		RecordVersion:          c.RecordVersion(),
		DaysLeftAtCancellation: c.DaysLeftAtCancellation(),
		ValueLostMinorUnits:    c.ValueLostMinorUnits(),
		Reason:                 c.Reason(),
		CancelledAt:            c.CancelledAt(),
	}
}

func ToCancellationDTOs(records []*membership.CancellationRecord) []*CancellationDTO {
	return lo.Map(records, func(c *membership.CancellationRecord, _ int) *CancellationDTO {
		return ToCancellationDTO(c)
	})
}

func ToEventDTOs(events []*membership.Event) []*EventDTO {
	return lo.Map(events, func(e *membership.Event, _ int) *EventDTO {
		return &EventDTO{
			ID:            e.ID(),
			RecordVersion: e.RecordVersion(),
			EventType:     string(e.EventType()),
			OldPlanID:     e.OldPlanID(),
			NewPlanID:     e.NewPlanID(),
			Metadata:      e.Metadata(),
			CreatedAt:     e.CreatedAt(),
		}
	})
}
