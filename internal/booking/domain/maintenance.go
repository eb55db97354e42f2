package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceSchedule blocks a facility's availability for a time window.
// Schedules are immutable once created.
type MaintenanceSchedule struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	Window     TimeRange
	Reason     string
	CreatedAt  time.Time
}

// NewMaintenanceSchedule creates a maintenance window for an already
// conflict-checked range.
func NewMaintenanceSchedule(facilityID uuid.UUID, window TimeRange, reason string, now time.Time) *MaintenanceSchedule {
	return &MaintenanceSchedule{
		ID:         uuid.New(),
		FacilityID: facilityID,
		Window:     window,
		Reason:     reason,
		CreatedAt:  now.UTC(),
	}
}
