package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/domain/company"
	"datadesk/internal/domain/identifier"
	"datadesk/internal/infrastructure/persistence/mappers"
	"datadesk/internal/infrastructure/persistence/models"
	"datadesk/internal/shared/authorization"
	db "datadesk/internal/shared/db"
	apperrors "datadesk/internal/shared/errors"
)

type CompanyRepository struct {
	db        *gorm.DB
	sequences *SequenceRepository
	mapper    mappers.CompanyMapper
}

func NewCompanyRepository(db *gorm.DB, sequences *SequenceRepository) *CompanyRepository {
	return &CompanyRepository{
		db:        db,
		sequences: sequences,
		mapper:    mappers.NewCompanyMapper(),
	}
}

func (r *CompanyRepository) Save(ctx context.Context, c *company.Company) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := nextPlainID(ctx, r.sequences, r.db, identifier.NamespaceCompany, "C", "companies")
		if err != nil {
			return err
		}

		model := r.mapper.ToModel(c)
		model.ID = id

		if err := tx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				continue
			}
			return fmt.Errorf("failed to save company: %w", err)
		}

		return c.SetID(id)
	}

	return apperrors.NewConflictError("could not allocate a unique company identifier")
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}

	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) List(ctx context.Context, scope authorization.Scope) ([]*company.Company, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var companyModels []models.CompanyModel
	if err := tx.
		Model(&models.CompanyModel{}).
		Scopes(companyIDScope(scope)).
		Order("id ASC").
		Find(&companyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := make([]*company.Company, len(companyModels))
	for i, model := range companyModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		companies[i] = c
	}

	return companies, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("id = ?", id).Delete(&models.CompanyModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("company not found")
	}
	return nil
}

// companyIDScope restricts the companies table itself, where the tenant
// column is id rather than company_id.
func companyIDScope(scope authorization.Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.Role.IsSuperAdmin() {
			return db
		}
		return db.Where("id = ?", scope.CompanyID)
	}
}
