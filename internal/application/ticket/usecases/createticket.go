package usecases

import (
	"context"

	"datadesk/internal/domain/shared/events"
	"datadesk/internal/domain/ticket"
	apperrors "datadesk/internal/shared/errors"
	"datadesk/internal/shared/logger"
)

// CreateTicketCommand represents the input for creating a ticket
type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	AssetID     *string
	CreatedBy   uint
	CompanyID   string
	BranchID    string

	PhoneNumber    *string
	DeviceLocation *string
	IPAddress      *string

	CustomDeviceType         *string
	CustomDeviceSerialNumber *string
	CustomDeviceAssetCode    *string
	CustomDeviceBrand        *string
	CustomDeviceModel        *string

	Images      []string
	Attachments []string
}

// CreateTicketResult represents the output of creating a ticket
type CreateTicketResult struct {
	Ticket TicketDTO
}

// CreateTicketUseCase handles ticket creation
type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	txManager   TransactionManager
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	txManager TransactionManager,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		cmd.Priority,
		cmd.CreatedBy,
		cmd.CompanyID,
		cmd.BranchID,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	newTicket.SetAssetID(cmd.AssetID)
	newTicket.SetContactInfo(cmd.PhoneNumber, cmd.DeviceLocation, cmd.IPAddress)
	newTicket.SetCustomDevice(
		cmd.CustomDeviceType,
		cmd.CustomDeviceSerialNumber,
		cmd.CustomDeviceAssetCode,
		cmd.CustomDeviceBrand,
		cmd.CustomDeviceModel,
	)
	if len(cmd.Images) > 0 {
		newTicket.SetImages(cmd.Images)
	}
	if len(cmd.Attachments) > 0 {
		newTicket.SetAttachments(cmd.Attachments)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		history, err := ticket.NewHistory(newTicket.ID(), "created", "Ticket created", cmd.CreatedBy)
		if err != nil {
			return apperrors.NewInternalError("failed to build ticket history", err.Error())
		}

		return uc.historyRepo.Append(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket",
			"title", cmd.Title,
			"company_id", cmd.CompanyID,
			"branch_id", cmd.BranchID,
			"error", err,
		)
		return nil, err
	}

	// Events go out after the transaction commits, so subscribers never see
	// a ticket that was rolled back.
	if err := uc.dispatcher.Publish(ticket.NewTicketCreatedEvent(newTicket)); err != nil {
		uc.logger.Warnw("failed to publish ticket created event",
			"ticket_id", newTicket.ID(),
			"error", err,
		)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"company_id", newTicket.CompanyID(),
		"branch_id", newTicket.BranchID(),
		"created_by", newTicket.CreatedBy(),
	)

	return &CreateTicketResult{Ticket: toTicketDTO(newTicket)}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	var missing []string

	if len(cmd.Title) == 0 {
		missing = append(missing, "title")
	}
	if len(cmd.Description) == 0 {
		missing = append(missing, "description")
	}
	if cmd.CreatedBy == 0 {
		missing = append(missing, "created_by")
	}
	if len(cmd.CompanyID) == 0 {
		missing = append(missing, "company_id")
	}
	if len(cmd.BranchID) == 0 {
		missing = append(missing, "branch_id")
	}

	if len(missing) > 0 {
		return apperrors.NewFieldValidationError("missing required fields", missing...)
	}

	return nil
}
