package models

import (
	"time"

	"github.com/gymflow/gymflow/internal/shared/constants"
)

type PlanChangeRequestModel struct {
	ID                   uint      `gorm:"primarykey"`
	RequestID            string    `gorm:"uniqueIndex;not null;size:36"`
	MemberID             uint      `gorm:"not null;index:idx_pcr_member_status,priority:1"`
	FromPlanID           uint      `gorm:"not null"`
	ToPlanID             uint      `gorm:"not null"`
	BaseRecordVersion    int       `gorm:"not null"`
	DaysRemaining        int       `gorm:"not null"`
	DaysTotal            int       `gorm:"not null"`
	CurrentPlanBalance   int64     `gorm:"not null"`
	NewPlanPrice         int64     `gorm:"not null"`
	BalanceDifference    int64     `gorm:"not null"`
	PaymentRequired      bool      `gorm:"not null"`
	Status               string    `gorm:"not null;size:20;index:idx_pcr_member_status,priority:2"`
	ExpiresAt            time.Time `gorm:"not null"`
	ConfirmedAt          *time.Time
	AppliedAt            *time.Time
	AppliedRecordVersion *int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (PlanChangeRequestModel) TableName() string {
	return constants.TablePlanChangeRequests
}
