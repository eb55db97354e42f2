package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sportsms/courtside/internal/booking/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/outbox"
)

func TestScheduleMaintenanceHandler_Handle(t *testing.T) {
	facility, err := domain.NewFacility("Center Court", "Stadium North", nil, 12000, nil)
	require.NoError(t, err)
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	clock := sharedDomain.FixedClock{Instant: time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)}

	t.Run("schedules maintenance when window is free", func(t *testing.T) {
		facilityRepo := new(mockFacilityRepo)
		bookingRepo := new(mockBookingRepo)
		maintenanceRepo := new(mockMaintenanceRepo)
		outboxRepo := new(mockBookingOutboxRepo)
		uow := new(mockBookingUnitOfWork)
		handler := NewScheduleMaintenanceHandler(facilityRepo, bookingRepo, maintenanceRepo, outboxRepo, uow, clock)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		facilityRepo.On("FindByIDForUpdate", txCtx, facility.ID()).Return(facility, nil)
		bookingRepo.On("FindOverlapping", txCtx, facility.ID(), mock.AnythingOfType("domain.TimeRange")).Return([]*domain.FacilityBooking{}, nil)
		maintenanceRepo.On("Save", txCtx, mock.MatchedBy(func(s *domain.MaintenanceSchedule) bool {
			return s.FacilityID == facility.ID() && s.Reason == "resurfacing"
		})).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.MatchedBy(func(msgs []*outbox.Message) bool {
			return len(msgs) == 1
		})).Return(nil)

		id, err := handler.Handle(ctx, ScheduleMaintenanceCommand{
			FacilityID: facility.ID(),
			StartTime:  start,
			EndTime:    end,
			Reason:     "resurfacing",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		facilityRepo.AssertExpectations(t)
		bookingRepo.AssertExpectations(t)
		maintenanceRepo.AssertExpectations(t)
		outboxRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("existing booking blocks the window", func(t *testing.T) {
		facilityRepo := new(mockFacilityRepo)
		bookingRepo := new(mockBookingRepo)
		maintenanceRepo := new(mockMaintenanceRepo)
		uow := new(mockBookingUnitOfWork)
		handler := NewScheduleMaintenanceHandler(facilityRepo, bookingRepo, maintenanceRepo, new(mockBookingOutboxRepo), uow, clock)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")
		window, err := domain.NewTimeRange(start, end)
		require.NoError(t, err)
		existing := domain.NewFacilityBooking(facility.ID(), uuid.New(), nil, window, false, "")

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		facilityRepo.On("FindByIDForUpdate", txCtx, facility.ID()).Return(facility, nil)
		bookingRepo.On("FindOverlapping", txCtx, facility.ID(), mock.Anything).Return([]*domain.FacilityBooking{existing}, nil)

		_, err = handler.Handle(ctx, ScheduleMaintenanceCommand{
			FacilityID: facility.ID(),
			StartTime:  start,
			EndTime:    end,
			Reason:     "resurfacing",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, sharedDomain.ErrConflict)
		assert.Contains(t, err.Error(), "Booking conflict detected")
		maintenanceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("inverted window", func(t *testing.T) {
		uow := new(mockBookingUnitOfWork)
		handler := NewScheduleMaintenanceHandler(new(mockFacilityRepo), new(mockBookingRepo), new(mockMaintenanceRepo), new(mockBookingOutboxRepo), uow, clock)

		_, err := handler.Handle(context.Background(), ScheduleMaintenanceCommand{
			FacilityID: facility.ID(),
			StartTime:  end,
			EndTime:    start,
		})

		assert.ErrorIs(t, err, sharedDomain.ErrValidation)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestUpdateBookingStatusHandler_Handle(t *testing.T) {
	window, err := domain.NewTimeRange(
		time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	t.Run("approves a pending booking", func(t *testing.T) {
		booking := domain.NewFacilityBooking(uuid.New(), uuid.New(), nil, window, false, "")
		booking.ClearDomainEvents()

		bookingRepo := new(mockBookingRepo)
		outboxRepo := new(mockBookingOutboxRepo)
		uow := new(mockBookingUnitOfWork)
		handler := NewUpdateBookingStatusHandler(bookingRepo, outboxRepo, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		bookingRepo.On("FindByID", ctx, booking.ID()).Return(booking, nil)
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		bookingRepo.On("Save", txCtx, booking).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.Anything).Return(nil)

		err := handler.Handle(ctx, UpdateBookingStatusCommand{
			BookingID: booking.ID(),
			Status:    "APPROVED",
			ActorID:   uuid.New(),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.BookingApproved, booking.Status())
	})

	t.Run("approval records the covering payment", func(t *testing.T) {
		booking := domain.NewFacilityBooking(uuid.New(), uuid.New(), nil, window, true, "")
		booking.ClearDomainEvents()

		bookingRepo := new(mockBookingRepo)
		outboxRepo := new(mockBookingOutboxRepo)
		uow := new(mockBookingUnitOfWork)
		handler := NewUpdateBookingStatusHandler(bookingRepo, outboxRepo, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		bookingRepo.On("FindByID", ctx, booking.ID()).Return(booking, nil)
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		bookingRepo.On("Save", txCtx, booking).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.Anything).Return(nil)

		paymentID := uuid.New()
		err := handler.Handle(ctx, UpdateBookingStatusCommand{
			BookingID: booking.ID(),
			Status:    "APPROVED",
			PaymentID: &paymentID,
			ActorID:   uuid.New(),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.BookingApproved, booking.Status())
		require.NotNil(t, booking.PaymentID())
		assert.Equal(t, paymentID, *booking.PaymentID())
	})

	t.Run("unknown status", func(t *testing.T) {
		booking := domain.NewFacilityBooking(uuid.New(), uuid.New(), nil, window, false, "")
		booking.ClearDomainEvents()

		bookingRepo := new(mockBookingRepo)
		uow := new(mockBookingUnitOfWork)
		handler := NewUpdateBookingStatusHandler(bookingRepo, new(mockBookingOutboxRepo), uow)

		ctx := context.Background()
		bookingRepo.On("FindByID", ctx, booking.ID()).Return(booking, nil)

		err := handler.Handle(ctx, UpdateBookingStatusCommand{
			BookingID: booking.ID(),
			Status:    "ARCHIVED",
		})

		assert.ErrorIs(t, err, sharedDomain.ErrValidation)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("unknown booking", func(t *testing.T) {
		bookingRepo := new(mockBookingRepo)
		handler := NewUpdateBookingStatusHandler(bookingRepo, new(mockBookingOutboxRepo), new(mockBookingUnitOfWork))

		ctx := context.Background()
		bookingID := uuid.New()
		bookingRepo.On("FindByID", ctx, bookingID).Return(nil, sharedDomain.NotFoundError("booking not found"))

		err := handler.Handle(ctx, UpdateBookingStatusCommand{
			BookingID: bookingID,
			Status:    "APPROVED",
		})

		assert.ErrorIs(t, err, sharedDomain.ErrNotFound)
	})
}
