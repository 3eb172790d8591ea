package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/gymflow/gymflow/internal/infrastructure/persistence/models"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

// AutoMigrateModels lists every table the service owns.
func AutoMigrateModels() []any {
	return []any{
		&models.PlanModel{},
		&models.MemberModel{},
		&models.MembershipRecordModel{},
		&models.PlanChangeRequestModel{},
		&models.CancellationRecordModel{},
		&models.MembershipEventModel{},
		&models.RedeemedReceiptModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the gorm models.
// Used for sqlite and local development.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	tables := AutoMigrateModels()
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	s.logger.Infow("auto-migration completed", "tables", len(tables))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
