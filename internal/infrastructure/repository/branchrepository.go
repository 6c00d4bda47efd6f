package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/domain/company"
	"datadesk/internal/domain/identifier"
	"datadesk/internal/infrastructure/persistence/mappers"
	"datadesk/internal/infrastructure/persistence/models"
	db "datadesk/internal/shared/db"
	apperrors "datadesk/internal/shared/errors"
)

type BranchRepository struct {
	db        *gorm.DB
	sequences *SequenceRepository
	mapper    mappers.CompanyMapper
}

func NewBranchRepository(db *gorm.DB, sequences *SequenceRepository) *BranchRepository {
	return &BranchRepository{
		db:        db,
		sequences: sequences,
		mapper:    mappers.NewCompanyMapper(),
	}
}

func (r *BranchRepository) Save(ctx context.Context, b *company.Branch) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := nextPlainID(ctx, r.sequences, r.db, identifier.NamespaceBranch, "B", "branches")
		if err != nil {
			return err
		}

		model := r.mapper.BranchToModel(b)
		model.ID = id

		if err := tx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				continue
			}
			return fmt.Errorf("failed to save branch: %w", err)
		}

		return b.SetID(id)
	}

	return apperrors.NewConflictError("could not allocate a unique branch identifier")
}

func (r *BranchRepository) Update(ctx context.Context, b *company.Branch) error {
	model := r.mapper.BranchToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BranchModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update branch: %w", result.Error)
	}

	return nil
}

func (r *BranchRepository) FindByID(ctx context.Context, id string) (*company.Branch, error) {
	var model models.BranchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("branch not found")
		}
		return nil, fmt.Errorf("failed to find branch: %w", err)
	}

	return r.mapper.BranchToDomain(&model)
}

func (r *BranchRepository) ListByCompanyID(ctx context.Context, companyID string) ([]*company.Branch, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var branchModels []models.BranchModel
	if err := tx.
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&branchModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	branches := make([]*company.Branch, len(branchModels))
	for i, model := range branchModels {
		b, err := r.mapper.BranchToDomain(&model)
		if err != nil {
			return nil, err
		}
		branches[i] = b
	}

	return branches, nil
}

func (r *BranchRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("id = ?", id).Delete(&models.BranchModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete branch: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("branch not found")
	}
	return nil
}
