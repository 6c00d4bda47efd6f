package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"datadesk/internal/domain/identifier"
	"datadesk/internal/infrastructure/persistence/models"
	db "datadesk/internal/shared/db"
	apperrors "datadesk/internal/shared/errors"
)

// SequenceRepository allocates sequential identifier numbers from the
// id_sequences table. The counter row is locked for the duration of the
// caller's transaction so concurrent creates in the same namespace
// serialize instead of colliding.
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

func (r *SequenceRepository) Next(ctx context.Context, namespace string, seed identifier.SeedFunc) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx
	// SQLite (tests) serializes writers on its own and rejects FOR UPDATE
	if tx.Dialector.Name() != "sqlite" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var model models.IDSequenceModel
	err := query.Where("namespace = ?", namespace).First(&model).Error

	if err == gorm.ErrRecordNotFound {
		last := 0
		if seed != nil {
			last, err = seed(ctx)
			if err != nil {
				return 0, fmt.Errorf("failed to seed sequence %s: %w", namespace, err)
			}
		}

		model = models.IDSequenceModel{Namespace: namespace, LastValue: last}
		if err := tx.Create(&model).Error; err != nil {
			if !apperrors.IsDuplicateError(err) {
				return 0, fmt.Errorf("failed to create sequence %s: %w", namespace, err)
			}
			// Lost the seeding race, load the row the winner created
			if err := query.Where("namespace = ?", namespace).First(&model).Error; err != nil {
				return 0, fmt.Errorf("failed to reload sequence %s: %w", namespace, err)
			}
		}
	} else if err != nil {
		return 0, fmt.Errorf("failed to load sequence %s: %w", namespace, err)
	}

	model.LastValue++

	if err := tx.
		Model(&models.IDSequenceModel{}).
		Where("namespace = ?", namespace).
		Update("last_value", model.LastValue).Error; err != nil {
		return 0, fmt.Errorf("failed to advance sequence %s: %w", namespace, err)
	}

	return model.LastValue, nil
}
