package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/gymflow/gymflow/internal/shared/constants"
)

// MembershipEventModel is the audit row written with each record version.
type MembershipEventModel struct {
	ID            uint   `gorm:"primarykey"`
	MemberID      uint   `gorm:"not null;index:idx_event_member"`
	RecordVersion int    `gorm:"not null"`
	EventType     string `gorm:"not null;size:30"`
	OldPlanID     *uint
	NewPlanID     *uint
	Metadata      datatypes.JSON
	CreatedAt     time.Time
}

func (MembershipEventModel) TableName() string {
	return constants.TableMembershipEvents
}
