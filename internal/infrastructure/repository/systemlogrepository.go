package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/domain/systemlog"
	"datadesk/internal/infrastructure/persistence/mappers"
	"datadesk/internal/infrastructure/persistence/models"
	db "datadesk/internal/shared/db"
)

type SystemLogRepository struct {
	db     *gorm.DB
	mapper mappers.SystemLogMapper
}

func NewSystemLogRepository(db *gorm.DB) *SystemLogRepository {
	return &SystemLogRepository{
		db:     db,
		mapper: mappers.NewSystemLogMapper(),
	}
}

func (r *SystemLogRepository) Append(ctx context.Context, e *systemlog.Entry) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append system log: %w", err)
	}

	return nil
}

func (r *SystemLogRepository) List(ctx context.Context, limit int) ([]*systemlog.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.SystemLogModel{}).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logModels []models.SystemLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list system logs: %w", err)
	}

	entries := make([]*systemlog.Entry, len(logModels))
	for i, model := range logModels {
		entries[i] = r.mapper.ToDomain(&model)
	}

	return entries, nil
}
