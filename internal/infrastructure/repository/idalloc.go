package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/domain/identifier"
	db "datadesk/internal/shared/db"
)

// nextPlainID allocates the next {prefix}NNN identifier for a table whose
// primary keys live in a single plain namespace (companies, branches,
// assets, data center logs).
func nextPlainID(
	ctx context.Context,
	sequences *SequenceRepository,
	base *gorm.DB,
	namespace string,
	prefix string,
	table string,
) (string, error) {
	n, err := sequences.Next(ctx, namespace, func(ctx context.Context) (int, error) {
		tx := db.GetTxFromContext(ctx, base)

		var ids []string
		if err := tx.
			Table(table).
			Where("id LIKE ?", prefix+"%").
			Pluck("id", &ids).Error; err != nil {
			return 0, fmt.Errorf("failed to seed %s sequence: %w", namespace, err)
		}

		return identifier.MaxPlain(ids, prefix), nil
	})
	if err != nil {
		return "", err
	}

	return identifier.Format(prefix, n), nil
}
