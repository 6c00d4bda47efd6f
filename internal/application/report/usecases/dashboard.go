package usecases

import (
	"context"

	"datadesk/internal/shared/authorization"
	"datadesk/internal/shared/logger"
)

// Repository provides the aggregate counts behind the dashboard. All counts
// respect the caller's visibility scope.
type Repository interface {
	CountTicketsByStatus(ctx context.Context, scope authorization.Scope) (map[string]int64, error)
	CountTicketsByPriority(ctx context.Context, scope authorization.Scope) (map[string]int64, error)
	CountAssetsByType(ctx context.Context, scope authorization.Scope) (map[string]int64, error)
	CountUsers(ctx context.Context, scope authorization.Scope) (int64, error)
}

// DashboardCommand represents the input for the dashboard report
type DashboardCommand struct {
	Scope authorization.Scope
}

// DashboardResult aggregates the counters shown on the landing page
type DashboardResult struct {
	TotalTickets      int64            `json:"total_tickets"`
	TicketsByStatus   map[string]int64 `json:"tickets_by_status"`
	TicketsByPriority map[string]int64 `json:"tickets_by_priority"`
	TotalAssets       int64            `json:"total_assets"`
	AssetsByType      map[string]int64 `json:"assets_by_type"`
	TotalUsers        int64            `json:"total_users"`
}

// DashboardUseCase assembles the dashboard report
type DashboardUseCase struct {
	reportRepo Repository
	logger     logger.Interface
}

func NewDashboardUseCase(reportRepo Repository, logger logger.Interface) *DashboardUseCase {
	return &DashboardUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context, cmd DashboardCommand) (*DashboardResult, error) {
	byStatus, err := uc.reportRepo.CountTicketsByStatus(ctx, cmd.Scope)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, err
	}

	byPriority, err := uc.reportRepo.CountTicketsByPriority(ctx, cmd.Scope)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by priority", "error", err)
		return nil, err
	}

	assetsByType, err := uc.reportRepo.CountAssetsByType(ctx, cmd.Scope)
	if err != nil {
		uc.logger.Errorw("failed to count assets by type", "error", err)
		return nil, err
	}

	totalUsers, err := uc.reportRepo.CountUsers(ctx, cmd.Scope)
	if err != nil {
		uc.logger.Errorw("failed to count users", "error", err)
		return nil, err
	}

	var totalTickets int64
	for _, n := range byStatus {
		totalTickets += n
	}
	var totalAssets int64
	for _, n := range assetsByType {
		totalAssets += n
	}

	return &DashboardResult{
		TotalTickets:      totalTickets,
		TicketsByStatus:   byStatus,
		TicketsByPriority: byPriority,
		TotalAssets:       totalAssets,
		AssetsByType:      assetsByType,
		TotalUsers:        totalUsers,
	}, nil
}

// TicketsByStatus serves the standalone status breakdown endpoint.
func (uc *DashboardUseCase) TicketsByStatus(ctx context.Context, scope authorization.Scope) (map[string]int64, error) {
	counts, err := uc.reportRepo.CountTicketsByStatus(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, err
	}
	return counts, nil
}

func (uc *DashboardUseCase) TicketsByPriority(ctx context.Context, scope authorization.Scope) (map[string]int64, error) {
	counts, err := uc.reportRepo.CountTicketsByPriority(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by priority", "error", err)
		return nil, err
	}
	return counts, nil
}

func (uc *DashboardUseCase) AssetsByType(ctx context.Context, scope authorization.Scope) (map[string]int64, error) {
	counts, err := uc.reportRepo.CountAssetsByType(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to count assets by type", "error", err)
		return nil, err
	}
	return counts, nil
}
