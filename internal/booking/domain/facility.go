package domain

import (
	"github.com/google/uuid"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// FacilityStatus is the operational state of a facility.
type FacilityStatus string

const (
	FacilityActive      FacilityStatus = "ACTIVE"
	FacilityMaintenance FacilityStatus = "MAINTENANCE"
	FacilityInactive    FacilityStatus = "INACTIVE"
)

// Facility is bookable reference data. Bookings reference it but never
// mutate it.
type Facility struct {
	sharedDomain.BaseEntity
	Name              string
	Location          string
	Capacity          *int
	PricePerHourCents int64
	Status            FacilityStatus
	OwnerClubID       *uuid.UUID
}

// NewFacility creates an ACTIVE facility after validating its reference data.
func NewFacility(name, location string, capacity *int, pricePerHourCents int64, ownerClubID *uuid.UUID) (*Facility, error) {
	if name == "" {
		return nil, sharedDomain.ValidationError("facility name is required")
	}
	if pricePerHourCents < 0 {
		return nil, sharedDomain.ValidationError("facility price must not be negative")
	}
	if capacity != nil && *capacity <= 0 {
		return nil, sharedDomain.ValidationError("facility capacity must be positive")
	}

	return &Facility{
		BaseEntity:        sharedDomain.NewBaseEntity(),
		Name:              name,
		Location:          location,
		Capacity:          capacity,
		PricePerHourCents: pricePerHourCents,
		Status:            FacilityActive,
		OwnerClubID:       ownerClubID,
	}, nil
}
