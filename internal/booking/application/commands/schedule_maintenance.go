package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/booking/domain"
	sharedApplication "github.com/sportsms/courtside/internal/shared/application"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/outbox"
)

// ScheduleMaintenanceCommand contains the data needed to block out a
// facility maintenance window.
type ScheduleMaintenanceCommand struct {
	FacilityID uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Reason     string
}

// ScheduleMaintenanceHandler handles the ScheduleMaintenanceCommand.
type ScheduleMaintenanceHandler struct {
	facilityRepo    domain.FacilityRepository
	bookingRepo     domain.BookingRepository
	maintenanceRepo domain.MaintenanceRepository
	outboxRepo      outbox.Repository
	uow             sharedApplication.UnitOfWork
	clock           sharedDomain.Clock
}

// NewScheduleMaintenanceHandler creates a new ScheduleMaintenanceHandler.
func NewScheduleMaintenanceHandler(
	facilityRepo domain.FacilityRepository,
	bookingRepo domain.BookingRepository,
	maintenanceRepo domain.MaintenanceRepository,
	outboxRepo outbox.Repository,
	uow sharedApplication.UnitOfWork,
	clock sharedDomain.Clock,
) *ScheduleMaintenanceHandler {
	return &ScheduleMaintenanceHandler{
		facilityRepo:    facilityRepo,
		bookingRepo:     bookingRepo,
		maintenanceRepo: maintenanceRepo,
		outboxRepo:      outboxRepo,
		uow:             uow,
		clock:           clock,
	}
}

// Handle executes the ScheduleMaintenanceCommand. The window is checked
// against the facility's non-cancelled bookings under the same facility lock
// booking creation uses.
func (h *ScheduleMaintenanceHandler) Handle(ctx context.Context, cmd ScheduleMaintenanceCommand) (uuid.UUID, error) {
	window, err := domain.NewTimeRange(cmd.StartTime, cmd.EndTime)
	if err != nil {
		return uuid.Nil, err
	}

	var schedule *domain.MaintenanceSchedule
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

		schedule = domain.NewMaintenanceSchedule(cmd.FacilityID, window, cmd.Reason, h.clock.Now())
		if err := h.maintenanceRepo.Save(txCtx, schedule); err != nil {
			return err
		}

		events := []sharedDomain.DomainEvent{domain.NewMaintenanceScheduled(schedule)}
		sharedApplication.ApplyEventMetadata(events, sharedApplication.NewEventMetadata(uuid.Nil))

		msgs, err := outbox.FromEvents(events)
		if err != nil {
			return err
		}
		return h.outboxRepo.SaveBatch(txCtx, msgs)
	})
	if err != nil {
		return uuid.Nil, err
	}

	return schedule.ID, nil
}
