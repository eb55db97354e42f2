package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FacilityRepository defines access for facility persistence.
type FacilityRepository interface {
	Save(ctx context.Context, facility *Facility) error
	FindByID(ctx context.Context, id uuid.UUID) (*Facility, error)
	// FindByIDForUpdate additionally locks the facility row for the
	// duration of the ambient transaction, serializing concurrent booking
	// checks on the same facility.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Facility, error)
	FindAll(ctx context.Context) ([]*Facility, error)
}

// BookingRepository defines access for facility booking persistence.
type BookingRepository interface {
	Save(ctx context.Context, booking *FacilityBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*FacilityBooking, error)
	// FindOverlapping returns the facility's non-cancelled bookings whose
	// window intersects the given half-open range.
	FindOverlapping(ctx context.Context, facilityID uuid.UUID, window TimeRange) ([]*FacilityBooking, error)
	// FindInRange returns the facility's bookings starting inside
	// [from, to), any status.
	FindInRange(ctx context.Context, facilityID uuid.UUID, from, to time.Time) ([]*FacilityBooking, error)
}

// MaintenanceRepository defines access for maintenance schedule persistence.
type MaintenanceRepository interface {
	Save(ctx context.Context, schedule *MaintenanceSchedule) error
	// FindOverlapping returns the facility's maintenance windows
	// intersecting the given half-open range.
	FindOverlapping(ctx context.Context, facilityID uuid.UUID, window TimeRange) ([]*MaintenanceSchedule, error)
	FindByFacility(ctx context.Context, facilityID uuid.UUID) ([]*MaintenanceSchedule, error)
}
