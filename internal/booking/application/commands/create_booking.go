package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/booking/domain"
	"github.com/sportsms/courtside/internal/directory"
	sharedApplication "github.com/sportsms/courtside/internal/shared/application"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/outbox"
)

// CreateBookingCommand contains the data needed to request a facility booking.
type CreateBookingCommand struct {
	FacilityID      uuid.UUID
	RequestedBy     uuid.UUID
	ClubID          *uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	PaymentRequired bool
	Notes           string
}

// CreateBookingHandler handles the CreateBookingCommand.
type CreateBookingHandler struct {
	facilityRepo    domain.FacilityRepository
	bookingRepo     domain.BookingRepository
	maintenanceRepo domain.MaintenanceRepository
	directory       directory.Directory
	outboxRepo      outbox.Repository
	uow             sharedApplication.UnitOfWork
}

// NewCreateBookingHandler creates a new CreateBookingHandler.
func NewCreateBookingHandler(
	facilityRepo domain.FacilityRepository,
	bookingRepo domain.BookingRepository,
	maintenanceRepo domain.MaintenanceRepository,
	dir directory.Directory,
	outboxRepo outbox.Repository,
	uow sharedApplication.UnitOfWork,
) *CreateBookingHandler {
	return &CreateBookingHandler{
		facilityRepo:    facilityRepo,
		bookingRepo:     bookingRepo,
		maintenanceRepo: maintenanceRepo,
		directory:       dir,
		outboxRepo:      outboxRepo,
		uow:             uow,
	}
}

// Handle executes the CreateBookingCommand. The conflict check and the insert
// run in one transaction with the facility row locked, so two overlapping
// requests for the same facility cannot both succeed.
func (h *CreateBookingHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (uuid.UUID, error) {
	// Resolution order: facility, then requester and club, then the window.
	if _, err := h.facilityRepo.FindByID(ctx, cmd.FacilityID); err != nil {
		return uuid.Nil, err
	}

	if ok, err := h.directory.UserExists(ctx, cmd.RequestedBy); err != nil {
		return uuid.Nil, err
	} else if !ok {
		return uuid.Nil, sharedDomain.NotFoundError("user not found")
	}
	if cmd.ClubID != nil {
		if ok, err := h.directory.ClubExists(ctx, *cmd.ClubID); err != nil {
			return uuid.Nil, err
		} else if !ok {
			return uuid.Nil, sharedDomain.NotFoundError("club not found")
		}
	}

	window, err := domain.NewTimeRange(cmd.StartTime, cmd.EndTime)
	if err != nil {
		return uuid.Nil, err
	}

	var booking *domain.FacilityBooking
	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		if _, err := h.facilityRepo.FindByIDForUpdate(txCtx, cmd.FacilityID); err != nil {
			return err
		}

		conflicts, err := h.bookingRepo.FindOverlapping(txCtx, cmd.FacilityID, window)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return sharedDomain.ConflictError("Booking conflict detected")
		}

		maintenance, err := h.maintenanceRepo.FindOverlapping(txCtx, cmd.FacilityID, window)
		if err != nil {
			return err
		}
		if len(maintenance) > 0 {
			return sharedDomain.ConflictError("Facility under maintenance")
		}

		booking = domain.NewFacilityBooking(
			cmd.FacilityID, cmd.RequestedBy, cmd.ClubID,
			window, cmd.PaymentRequired, cmd.Notes,
		)
		if err := h.bookingRepo.Save(txCtx, booking); err != nil {
			return err
		}

		events := booking.DomainEvents()
		sharedApplication.ApplyEventMetadata(events, sharedApplication.NewEventMetadata(cmd.RequestedBy))

		msgs, err := outbox.FromEvents(events)
		if err != nil {
			return err
		}
		return h.outboxRepo.SaveBatch(txCtx, msgs)
	})
	if err != nil {
		return uuid.Nil, err
	}

	booking.ClearDomainEvents()
	return booking.ID(), nil
}
