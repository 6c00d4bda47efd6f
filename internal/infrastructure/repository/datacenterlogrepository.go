package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/domain/datacenter"
	"datadesk/internal/domain/identifier"
	"datadesk/internal/infrastructure/persistence/mappers"
	"datadesk/internal/infrastructure/persistence/models"
	"datadesk/internal/shared/authorization"
	db "datadesk/internal/shared/db"
	apperrors "datadesk/internal/shared/errors"
)

type DataCenterLogRepository struct {
	db        *gorm.DB
	sequences *SequenceRepository
	mapper    mappers.DataCenterLogMapper
}

func NewDataCenterLogRepository(db *gorm.DB, sequences *SequenceRepository) *DataCenterLogRepository {
	return &DataCenterLogRepository{
		db:        db,
		sequences: sequences,
		mapper:    mappers.NewDataCenterLogMapper(),
	}
}

func (r *DataCenterLogRepository) Save(ctx context.Context, l *datacenter.Log) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := nextPlainID(ctx, r.sequences, r.db, identifier.NamespaceDataCenter, "DC", "data_center_logs")
		if err != nil {
			return err
		}

		model := r.mapper.ToModel(l)
		model.ID = id

		if err := tx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				continue
			}
			return fmt.Errorf("failed to save data center log: %w", err)
		}

		return l.SetID(id)
	}

	return apperrors.NewConflictError("could not allocate a unique data center log identifier")
}

func (r *DataCenterLogRepository) Update(ctx context.Context, l *datacenter.Log) error {
	model := r.mapper.ToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DataCenterLogModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update data center log: %w", result.Error)
	}

	return nil
}

func (r *DataCenterLogRepository) FindByID(ctx context.Context, id string) (*datacenter.Log, error) {
	var model models.DataCenterLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("data center log not found")
		}
		return nil, fmt.Errorf("failed to find data center log: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DataCenterLogRepository) List(ctx context.Context, scope authorization.Scope) ([]*datacenter.Log, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var logModels []models.DataCenterLogModel
	if err := tx.
		Model(&models.DataCenterLogModel{}).
		Scopes(scope.CompanyBranchScope()).
		Order("entry_time DESC").
		Find(&logModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list data center logs: %w", err)
	}

	logs := make([]*datacenter.Log, len(logModels))
	for i, model := range logModels {
		l, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		logs[i] = l
	}

	return logs, nil
}

func (r *DataCenterLogRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("id = ?", id).Delete(&models.DataCenterLogModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete data center log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("data center log not found")
	}
	return nil
}
