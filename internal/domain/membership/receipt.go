package membership

import (
	"strings"
	"time"
)

// RedeemedReceipt records that a payment receipt paid for one purchase or plan change.
// A receipt key can be redeemed once.
type RedeemedReceipt struct {
	id               uint
	receiptKey       string
	memberID         uint
	reference        string
	amountMinorUnits int64
	redeemedAt       time.Time
}

func NewRedeemedReceipt(receiptKey string, memberID uint, reference string, amountMinorUnits int64, now time.Time) (*RedeemedReceipt, error) {
	receiptKey = strings.TrimSpace(receiptKey)
	if receiptKey == "" {
		return nil, invalidInput("payment receipt key is required")
	}
	if memberID == 0 {
		return nil, invalidInput("member id is required")
	}
	return &RedeemedReceipt{
		receiptKey:       receiptKey,
		memberID:         memberID,
		reference:        reference,
		amountMinorUnits: amountMinorUnits,
		redeemedAt:       now.UTC(),
	}, nil
}

func ReconstructRedeemedReceipt(id uint, receiptKey string, memberID uint, reference string, amountMinorUnits int64, redeemedAt time.Time) *RedeemedReceipt {
	return &RedeemedReceipt{
		id:               id,
		receiptKey:       receiptKey,
		memberID:         memberID,
		reference:        reference,
		amountMinorUnits: amountMinorUnits,
		redeemedAt:       redeemedAt,
	}
}

func (r *RedeemedReceipt) ID() uint                { return r.id }
func (r *RedeemedReceipt) ReceiptKey() string      { return r.receiptKey }
func (r *RedeemedReceipt) MemberID() uint          { return r.memberID }
func (r *RedeemedReceipt) Reference() string       { return r.reference }
func (r *RedeemedReceipt) AmountMinorUnits() int64 { return r.amountMinorUnits }
func (r *RedeemedReceipt) RedeemedAt() time.Time   { return r.redeemedAt }

func (r *RedeemedReceipt) SetID(id uint) {
	r.id = id
}
