package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/gymflow/gymflow/internal/shared/constants"
)

// PlanModel is the persistence model for catalog plans.
type PlanModel struct {
	ID              uint   `gorm:"primarykey"`
	Name            string `gorm:"uniqueIndex;not null;size:100"`
	PriceMinorUnits int64  `gorm:"not null"`
	DurationMonths  int    `gorm:"not null"`
	Features        datatypes.JSON
	Description     string `gorm:"type:text"`
	Currency        string `gorm:"not null;size:3;default:USD"`
	Retired         bool   `gorm:"not null;default:false;index:idx_plan_retired"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}
