package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"datadesk/internal/domain/setting"
	"datadesk/internal/infrastructure/persistence/models"
	db "datadesk/internal/shared/db"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var model models.SystemSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("setting_key = ?", key).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load setting %s: %w", key, err)
	}

	return model.Value, true, nil
}

func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.SystemSettingModel{Key: key, Value: value}
	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
		}).
		Create(&model).Error; err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}

	return nil
}

func (r *SettingRepository) List(ctx context.Context) ([]setting.Setting, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var settingModels []models.SystemSettingModel
	if err := tx.Order("setting_key ASC").Find(&settingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	settings := make([]setting.Setting, len(settingModels))
	for i, model := range settingModels {
		settings[i] = setting.Setting{Key: model.Key, Value: model.Value}
	}

	return settings, nil
}
