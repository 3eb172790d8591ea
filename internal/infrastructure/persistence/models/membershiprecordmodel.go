package models

import (
	"time"

	"github.com/gymflow/gymflow/internal/shared/constants"
)

// MembershipRecordModel stores one immutable version of a member's membership.
// Rows are inserted, never updated.
type MembershipRecordModel struct {
	ID                uint      `gorm:"primarykey"`
	MemberID          uint      `gorm:"not null;uniqueIndex:uk_member_version,priority:1"`
	Version           int       `gorm:"not null;uniqueIndex:uk_member_version,priority:2"`
	PlanID            uint      `gorm:"not null;index:idx_record_plan"`
	StartDate         time.Time `gorm:"not null"`
	EndDate           time.Time `gorm:"not null"`
	Status            string    `gorm:"not null;size:20"`
	AutoRenew         bool      `gorm:"not null;default:false"`
	PauseStart        *time.Time
	PauseEnd          *time.Time
	PauseDurationDays *int
	CreatedAt         time.Time
}

func (MembershipRecordModel) TableName() string {
	return constants.TableMembershipRecords
}
