package domain

import (
	"github.com/google/uuid"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// BookingStatus is the approval state of a facility booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingApproved  BookingStatus = "APPROVED"
	BookingRejected  BookingStatus = "REJECTED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// KnownBookingStatus reports whether s is a valid booking status.
func KnownBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingCancelled:
		return true
	}
	return false
}

// FacilityBooking is the booking aggregate. A booking enters PENDING only
// after the conflict check passed; CANCELLED bookings stop counting against
// the facility's availability.
type FacilityBooking struct {
	sharedDomain.BaseAggregateRoot
	facilityID      uuid.UUID
	requestedBy     uuid.UUID
	clubID          *uuid.UUID
	window          TimeRange
	status          BookingStatus
	paymentRequired bool
	paymentID       *uuid.UUID
	notes           string
}

// NewFacilityBooking creates a PENDING booking for an already conflict-checked
// window.
func NewFacilityBooking(facilityID, requestedBy uuid.UUID, clubID *uuid.UUID, window TimeRange, paymentRequired bool, notes string) *FacilityBooking {
	b := &FacilityBooking{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		facilityID:        facilityID,
		requestedBy:       requestedBy,
		clubID:            clubID,
		window:            window,
		status:            BookingPending,
		paymentRequired:   paymentRequired,
		notes:             notes,
	}
	b.AddDomainEvent(NewBookingRequested(b))
	return b
}

// RehydrateFacilityBooking recreates a booking from persisted state.
func RehydrateFacilityBooking(
	entity sharedDomain.BaseEntity,
	facilityID, requestedBy uuid.UUID,
	clubID *uuid.UUID,
	window TimeRange,
	status BookingStatus,
	paymentRequired bool,
	paymentID *uuid.UUID,
	notes string,
) *FacilityBooking {
	return &FacilityBooking{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(entity),
		facilityID:        facilityID,
		requestedBy:       requestedBy,
		clubID:            clubID,
		window:            window,
		status:            status,
		paymentRequired:   paymentRequired,
		paymentID:         paymentID,
		notes:             notes,
	}
}

func (b *FacilityBooking) FacilityID() uuid.UUID  { return b.facilityID }
func (b *FacilityBooking) RequestedBy() uuid.UUID { return b.requestedBy }
func (b *FacilityBooking) ClubID() *uuid.UUID     { return b.clubID }
func (b *FacilityBooking) Window() TimeRange      { return b.window }
func (b *FacilityBooking) Status() BookingStatus  { return b.status }
func (b *FacilityBooking) PaymentRequired() bool  { return b.paymentRequired }
func (b *FacilityBooking) PaymentID() *uuid.UUID  { return b.paymentID }
func (b *FacilityBooking) Notes() string          { return b.notes }

// SetStatus moves the booking to the given approval state. Approval workflow
// beyond the plain status set lives with the caller.
func (b *FacilityBooking) SetStatus(status BookingStatus) error {
	if !KnownBookingStatus(status) {
		return sharedDomain.ValidationError("unknown booking status")
	}
	if b.status == status {
		return nil
	}
	prev := b.status
	b.status = status
	b.Touch()
	b.AddDomainEvent(NewBookingStatusChanged(b, prev))
	return nil
}

// AttachPayment links the payment that covers this booking.
func (b *FacilityBooking) AttachPayment(paymentID uuid.UUID) {
	b.paymentID = &paymentID
	b.Touch()
}
