package models

import (
	"time"

	"github.com/gymflow/gymflow/internal/shared/constants"
)

// CancellationRecordModel is append-only.
type CancellationRecordModel struct {
	ID                     uint      `gorm:"primarykey"`
	MemberID               uint      `gorm:"not null;index:idx_cancellation_member"`
	PlanID                 uint      `gorm:"not null"`
	RecordVersion          int       `gorm:"not null"`
	DaysLeftAtCancellation int       `gorm:"not null"`
	ValueLostMinorUnits    int64     `gorm:"not null"`
	Reason                 string    `gorm:"size:500"`
	CancelledAt            time.Time `gorm:"not null"`
}

func (CancellationRecordModel) TableName() string {
	return constants.TableCancellations
}
