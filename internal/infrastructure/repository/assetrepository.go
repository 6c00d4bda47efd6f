package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/domain/asset"
	"datadesk/internal/domain/identifier"
	"datadesk/internal/infrastructure/persistence/mappers"
	"datadesk/internal/infrastructure/persistence/models"
	"datadesk/internal/shared/authorization"
	db "datadesk/internal/shared/db"
	apperrors "datadesk/internal/shared/errors"
)

type AssetRepository struct {
	db        *gorm.DB
	sequences *SequenceRepository
	mapper    mappers.AssetMapper
}

func NewAssetRepository(db *gorm.DB, sequences *SequenceRepository) *AssetRepository {
	return &AssetRepository{
		db:        db,
		sequences: sequences,
		mapper:    mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := nextPlainID(ctx, r.sequences, r.db, identifier.NamespaceAsset, "A", "assets")
		if err != nil {
			return err
		}

		model := r.mapper.ToModel(a)
		model.ID = id

		if err := tx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				// Either the id namespace lagged or the asset code is taken.
				// Only the id case is retryable.
				var count int64
				if cErr := tx.
					Model(&models.AssetModel{}).
					Where("asset_code = ?", model.AssetCode).
					Count(&count).Error; cErr == nil && count > 0 {
					return apperrors.NewConflictError("asset code already exists")
				}
				continue
			}
			return fmt.Errorf("failed to save asset: %w", err)
		}

		return a.SetID(id)
	}

	return apperrors.NewConflictError("could not allocate a unique asset identifier")
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AssetModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"asset_code":    model.AssetCode,
			"serial_number": model.SerialNumber,
			"type":          model.Type,
			"brand":         model.Brand,
			"model":         model.Model,
			"start_date":    model.StartDate,
			"location":      model.Location,
			"department":    model.Department,
			"ip_address":    model.IPAddress,
			"diagram_file":  model.DiagramFile,
			"images":        model.Images,
			"responsible":   model.Responsible,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("asset code already exists")
		}
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}

	return nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id string) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) List(ctx context.Context, scope authorization.Scope) ([]*asset.Asset, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var assetModels []models.AssetModel
	if err := tx.
		Model(&models.AssetModel{}).
		Scopes(scope.CompanyBranchScope()).
		Order("id ASC").
		Find(&assetModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, len(assetModels))
	for i, model := range assetModels {
		a, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		assets[i] = a
	}

	return assets, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("id = ?", id).Delete(&models.AssetModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("asset not found")
	}
	return nil
}

func (r *AssetRepository) FindBySerialOrCode(ctx context.Context, key string) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("serial_number = ? OR asset_code = ?", key, key).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("asset not found")
		}
		return nil, fmt.Errorf("failed to search asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
