package usecases

import (
	"context"

	"datadesk/internal/domain/ticket"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// DeleteTicketCommand represents the input for deleting a ticket
type DeleteTicketCommand struct {
	TicketID string
	ActorID  uint
}

// DeleteTicketUseCase handles ticket deletion
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if len(cmd.TicketID) == 0 {
		return apperrors.NewFieldValidationError("missing required fields", "ticket_id")
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket",
			"ticket_id", cmd.TicketID,
			"error", err,
		)
		return err
	}

	uc.logger.Infow("ticket deleted",
		"ticket_id", cmd.TicketID,
		"deleted_by", cmd.ActorID,
	)

	return nil
}
