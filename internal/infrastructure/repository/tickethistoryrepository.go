package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/domain/ticket"
	"datadesk/internal/infrastructure/persistence/mappers"
	"datadesk/internal/infrastructure/persistence/models"
	db "datadesk/internal/shared/db"
)

// TicketHistoryRepository is append-only. There is deliberately no update or
// delete method.
type TicketHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketHistoryRepository(db *gorm.DB) *TicketHistoryRepository {
	return &TicketHistoryRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketHistoryRepository) Append(ctx context.Context, h *ticket.History) error {
	model := r.mapper.HistoryToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append ticket history: %w", err)
	}

	return h.SetID(model.ID)
}

func (r *TicketHistoryRepository) ListByTicketID(ctx context.Context, ticketID string) ([]*ticket.History, error) {
	var historyModels []models.TicketHistoryModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket history: %w", err)
	}

	entries := make([]*ticket.History, len(historyModels))
	for i, model := range historyModels {
		entries[i] = r.mapper.HistoryToDomain(&model)
	}

	return entries, nil
}
