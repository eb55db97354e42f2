package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/booking/domain"
	sharedApplication "github.com/sportsms/courtside/internal/shared/application"
	"github.com/sportsms/courtside/internal/shared/infrastructure/outbox"
)

// UpdateBookingStatusCommand moves a booking to a new approval state,
// optionally recording the payment that covers it.
type UpdateBookingStatusCommand struct {
	BookingID uuid.UUID
	Status    string
	PaymentID *uuid.UUID
	ActorID   uuid.UUID
}

// UpdateBookingStatusHandler handles the UpdateBookingStatusCommand.
type UpdateBookingStatusHandler struct {
	bookingRepo domain.BookingRepository
	outboxRepo  outbox.Repository
	uow         sharedApplication.UnitOfWork
}

// NewUpdateBookingStatusHandler creates a new UpdateBookingStatusHandler.
func NewUpdateBookingStatusHandler(
	bookingRepo domain.BookingRepository,
	outboxRepo outbox.Repository,
	uow sharedApplication.UnitOfWork,
) *UpdateBookingStatusHandler {
	return &UpdateBookingStatusHandler{
		bookingRepo: bookingRepo,
		outboxRepo:  outboxRepo,
		uow:         uow,
	}
}

// Handle executes the UpdateBookingStatusCommand. This is a plain status
// set; no conflict re-check happens on approval.
func (h *UpdateBookingStatusHandler) Handle(ctx context.Context, cmd UpdateBookingStatusCommand) error {
	booking, err := h.bookingRepo.FindByID(ctx, cmd.BookingID)
	if err != nil {
		return err
	}

	if err := booking.SetStatus(domain.BookingStatus(cmd.Status)); err != nil {
		return err
	}
	if cmd.PaymentID != nil {
		booking.AttachPayment(*cmd.PaymentID)
	}

	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		if err := h.bookingRepo.Save(txCtx, booking); err != nil {
			return err
		}

		events := booking.DomainEvents()
		sharedApplication.ApplyEventMetadata(events, sharedApplication.NewEventMetadata(cmd.ActorID))

		msgs, err := outbox.FromEvents(events)
		if err != nil {
			return err
		}
		return h.outboxRepo.SaveBatch(txCtx, msgs)
	})
	if err != nil {
		return err
	}

	booking.ClearDomainEvents()
	return nil
}
