package models

import (
	"time"

	"github.com/gymflow/gymflow/internal/shared/constants"
)

// RedeemedReceiptModel is append-only. The unique receipt key makes each receipt single-use.
type RedeemedReceiptModel struct {
	ID               uint      `gorm:"primarykey"`
	ReceiptKey       string    `gorm:"uniqueIndex:idx_redeemed_receipts_key;not null;size:100"`
	MemberID         uint      `gorm:"not null;index:idx_redeemed_receipts_member"`
	Reference        string    `gorm:"not null;size:100"`
	AmountMinorUnits int64     `gorm:"not null"`
	RedeemedAt       time.Time `gorm:"not null"`
}

func (RedeemedReceiptModel) TableName() string {
	return constants.TableRedeemedReceipts
}
