package migration

import (
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/infrastructure/persistence/models"
	"datadesk/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from model structs. Used in
// development; production runs versioned SQL scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, extraModels ...interface{}) error {
	s.logger.Infow("starting gorm auto migration")

	all := append(AllModels(), extraModels...)
	if err := db.AutoMigrate(all...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully",
		"models_count", len(all))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AllModels lists every persistence model in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&models.CompanyModel{},
		&models.BranchModel{},
		&models.UserModel{},
		&models.AssetModel{},
		&models.TicketModel{},
		&models.TicketHistoryModel{},
		&models.DataCenterLogModel{},
		&models.SystemSettingModel{},
		&models.SystemLogModel{},
		&models.IDSequenceModel{},
	}
}
