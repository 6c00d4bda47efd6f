package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/infrastructure/persistence/models"
	"datadesk/internal/shared/authorization"
	db "datadesk/internal/shared/db"
)

// ReportRepository answers the aggregate count queries behind the dashboard.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type groupCount struct {
	Label string
	Count int64
}

func (r *ReportRepository) CountTicketsByStatus(ctx context.Context, scope authorization.Scope) (map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []groupCount
	if err := tx.
		Model(&models.TicketModel{}).
		Scopes(scope.TicketScope()).
		Select("status AS label, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	return toCountMap(rows), nil
}

func (r *ReportRepository) CountTicketsByPriority(ctx context.Context, scope authorization.Scope) (map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []groupCount
	if err := tx.
		Model(&models.TicketModel{}).
		Scopes(scope.TicketScope()).
		Select("priority AS label, COUNT(*) AS count").
		Group("priority").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by priority: %w", err)
	}

	return toCountMap(rows), nil
}

func (r *ReportRepository) CountAssetsByType(ctx context.Context, scope authorization.Scope) (map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []groupCount
	if err := tx.
		Model(&models.AssetModel{}).
		Scopes(scope.CompanyBranchScope()).
		Select("type AS label, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count assets by type: %w", err)
	}

	return toCountMap(rows), nil
}

func (r *ReportRepository) CountUsers(ctx context.Context, scope authorization.Scope) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.UserModel{}).
		Scopes(scope.CompanyScope()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

func toCountMap(rows []groupCount) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Label] = row.Count
	}
	return out
}
