package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datadesk/internal/domain/identifier"
	"datadesk/internal/domain/ticket"
	"datadesk/internal/infrastructure/persistence/mappers"
	"datadesk/internal/infrastructure/persistence/models"
	"datadesk/internal/shared/authorization"
	db "datadesk/internal/shared/db"
	apperrors "datadesk/internal/shared/errors"
)

// maxIDAttempts bounds the generate-and-insert retry loop. Collisions only
// happen when legacy rows sit above the counter, so the loop converges fast.
const maxIDAttempts = 5

type TicketRepository struct {
	db        *gorm.DB
	sequences *SequenceRepository
	mapper    mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB, sequences *SequenceRepository) *TicketRepository {
	return &TicketRepository{
		db:        db,
		sequences: sequences,
		mapper:    mappers.NewTicketMapper(),
	}
}

// Save allocates the ticket identifier from the branch's namespace and
// inserts the row. A duplicate key means the counter lagged behind existing
// rows; the counter is bumped and the insert retried.
func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	prefix, err := r.branchTicketPrefix(ctx, t.BranchID())
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := r.nextTicketID(ctx, prefix)
		if err != nil {
			return err
		}

		model := r.mapper.ToModel(t)
		model.ID = id

		if err := tx.Create(model).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				continue
			}
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		return t.SetID(id)
	}

	return apperrors.NewConflictError("could not allocate a unique ticket identifier")
}

// Update writes the full column set. Select("*") forces zero-valued fields
// through, so cleared pointers (assignee, resolution) persist as NULL
// instead of being skipped by the struct update.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(
	ctx context.Context,
	scope authorization.Scope,
	filter ticket.ListFilter,
) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Scopes(scope.TicketScope())

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.AssetID != "" {
		query = query.Where("asset_id = ?", filter.AssetID)
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("id = ?", id).Delete(&models.TicketModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

// FindForTracking resolves tickets for the public tracking endpoint. Serial
// numbers win: the key is matched against linked asset serials and custom
// device serials first. Failing that it is treated as a ticket id, tried
// exact, then with dashes stripped, then as a substring.
func (r *TicketRepository) FindForTracking(ctx context.Context, key string) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ticketModels []models.TicketModel
	if err := tx.
		Model(&models.TicketModel{}).
		Joins("LEFT JOIN assets ON assets.id = tickets.asset_id").
		Where("assets.serial_number = ? OR tickets.custom_device_serial_number = ?", key, key).
		Order("tickets.created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search tickets by serial: %w", err)
	}

	if len(ticketModels) == 0 {
		normalized := identifier.Normalize(key)
		if err := tx.
			Model(&models.TicketModel{}).
			Where("id = ? OR REPLACE(id, '-', '') = ? OR id LIKE ?", key, normalized, "%"+key+"%").
			Order("created_at DESC").
			Find(&ticketModels).Error; err != nil {
			return nil, fmt.Errorf("failed to search tickets by id: %w", err)
		}
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

// branchTicketPrefix returns the branch's ticket prefix, or "" for the
// shared T namespace.
func (r *TicketRepository) branchTicketPrefix(ctx context.Context, branchID string) (string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.BranchModel
	if err := tx.
		Select("ticket_prefix").
		Where("id = ?", branchID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperrors.NewNotFoundError("branch not found")
		}
		return "", fmt.Errorf("failed to load branch: %w", err)
	}

	if model.TicketPrefix == nil {
		return "", nil
	}
	return *model.TicketPrefix, nil
}

func (r *TicketRepository) nextTicketID(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		n, err := r.sequences.Next(ctx, identifier.TicketNamespace("T"), r.seedUnprefixed)
		if err != nil {
			return "", err
		}
		return identifier.Format("T", n), nil
	}

	n, err := r.sequences.Next(ctx, identifier.TicketNamespace(prefix), func(ctx context.Context) (int, error) {
		return r.seedPrefixed(ctx, prefix)
	})
	if err != nil {
		return "", err
	}
	return identifier.FormatDashed(prefix, n), nil
}

// seedUnprefixed finds the highest existing TNNN ticket number. Prefixed
// tickets never count, even those whose prefix starts with T.
func (r *TicketRepository) seedUnprefixed(ctx context.Context) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []string
	if err := tx.
		Model(&models.TicketModel{}).
		Where("id LIKE ? AND id NOT LIKE ?", "T%", "%-%").
		Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("failed to seed ticket sequence: %w", err)
	}

	return identifier.MaxPlain(ids, "T"), nil
}

func (r *TicketRepository) seedPrefixed(ctx context.Context, prefix string) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []string
	if err := tx.
		Model(&models.TicketModel{}).
		Where("id LIKE ?", prefix+"-%").
		Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("failed to seed ticket sequence: %w", err)
	}

	return identifier.MaxDashed(ids, prefix), nil
}
