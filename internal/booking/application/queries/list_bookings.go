package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/booking/domain"
)

// BookingView is the read model for a facility booking.
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	FacilityID      uuid.UUID  `json:"facility_id"`
	RequestedBy     uuid.UUID  `json:"requested_by"`
	ClubID          *uuid.UUID `json:"club_id,omitempty"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	Status          string     `json:"status"`
	PaymentRequired bool       `json:"payment_required"`
	PaymentID       *uuid.UUID `json:"payment_id,omitempty"`
	Notes           string     `json:"notes"`
}

// ListBookingsHandler returns a facility's bookings in a date range.
type ListBookingsHandler struct {
	bookingRepo domain.BookingRepository
}

// NewListBookingsHandler creates a new ListBookingsHandler.
func NewListBookingsHandler(bookingRepo domain.BookingRepository) *ListBookingsHandler {
	return &ListBookingsHandler{bookingRepo: bookingRepo}
}

// Handle lists bookings starting inside [from, to), any status. This is a
// plain range read; no conflict logic runs here.
func (h *ListBookingsHandler) Handle(ctx context.Context, facilityID uuid.UUID, from, to time.Time) ([]BookingView, error) {
	bookings, err := h.bookingRepo.FindInRange(ctx, facilityID, from, to)
	if err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{
			ID:              b.ID(),
			FacilityID:      b.FacilityID(),
			RequestedBy:     b.RequestedBy(),
			ClubID:          b.ClubID(),
			StartTime:       b.Window().Start,
			EndTime:         b.Window().End,
			Status:          string(b.Status()),
			PaymentRequired: b.PaymentRequired(),
			PaymentID:       b.PaymentID(),
			Notes:           b.Notes(),
		})
	}
	return views, nil
}
