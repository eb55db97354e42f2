package domain

import (
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

const (
	AggregateType = "FacilityBooking"

	RoutingKeyBookingRequested     = "booking.requested"
	RoutingKeyBookingStatusChanged = "booking.status_changed"
	RoutingKeyMaintenanceScheduled = "booking.maintenance_scheduled"
)

// BookingRequested is emitted when a booking passes the conflict check.
type BookingRequested struct {
	sharedDomain.BaseEvent
	FacilityID      uuid.UUID `json:"facility_id"`
	RequestedBy     uuid.UUID `json:"requested_by"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	PaymentRequired bool      `json:"payment_required"`
}

// NewBookingRequested creates a BookingRequested event.
func NewBookingRequested(b *FacilityBooking) *BookingRequested {
	return &BookingRequested{
		BaseEvent:       sharedDomain.NewBaseEvent(b.ID(), AggregateType, RoutingKeyBookingRequested),
		FacilityID:      b.FacilityID(),
		RequestedBy:     b.RequestedBy(),
		StartTime:       b.Window().Start,
		EndTime:         b.Window().End,
		PaymentRequired: b.PaymentRequired(),
	}
}

// BookingStatusChanged is emitted when a booking's approval state moves.
type BookingStatusChanged struct {
	sharedDomain.BaseEvent
	FacilityID uuid.UUID `json:"facility_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
}

// NewBookingStatusChanged creates a BookingStatusChanged event.
func NewBookingStatusChanged(b *FacilityBooking, from BookingStatus) *BookingStatusChanged {
	return &BookingStatusChanged{
		BaseEvent:  sharedDomain.NewBaseEvent(b.ID(), AggregateType, RoutingKeyBookingStatusChanged),
		FacilityID: b.FacilityID(),
		From:       string(from),
		To:         string(b.Status()),
	}
}

// MaintenanceScheduled is emitted when a maintenance window is created.
type MaintenanceScheduled struct {
	sharedDomain.BaseEvent
	FacilityID uuid.UUID `json:"facility_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Reason     string    `json:"reason"`
}

// NewMaintenanceScheduled creates a MaintenanceScheduled event.
func NewMaintenanceScheduled(m *MaintenanceSchedule) *MaintenanceScheduled {
	return &MaintenanceScheduled{
		BaseEvent:  sharedDomain.NewBaseEvent(m.FacilityID, AggregateType, RoutingKeyMaintenanceScheduled),
		FacilityID: m.FacilityID,
		StartTime:  m.Window.Start,
		EndTime:    m.Window.End,
		Reason:     m.Reason,
	}
}
