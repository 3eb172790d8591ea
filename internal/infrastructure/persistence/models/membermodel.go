package models

import (
	"time"

	"github.com/gymflow/gymflow/internal/shared/constants"
)

type MemberModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	FullName     string `gorm:"not null;size:100"`
	Phone        string `gorm:"size:30"`
	Address      string `gorm:"size:255"`
	DateOfBirth  *time.Time
	PasswordHash string `gorm:"not null;size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (MemberModel) TableName() string {
	return constants.TableMembers
}
