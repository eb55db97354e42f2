package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/booking/domain"
)

// MaintenanceView is the read model for a maintenance window.
type MaintenanceView struct {
	ID         uuid.UUID `json:"id"`
	FacilityID uuid.UUID `json:"facility_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Reason     string    `json:"reason"`
}

// ListMaintenanceHandler returns a facility's maintenance windows.
type ListMaintenanceHandler struct {
	maintenanceRepo domain.MaintenanceRepository
}

// NewListMaintenanceHandler creates a new ListMaintenanceHandler.
func NewListMaintenanceHandler(maintenanceRepo domain.MaintenanceRepository) *ListMaintenanceHandler {
	return &ListMaintenanceHandler{maintenanceRepo: maintenanceRepo}
}

// Handle lists the facility's maintenance windows.
func (h *ListMaintenanceHandler) Handle(ctx context.Context, facilityID uuid.UUID) ([]MaintenanceView, error) {
	schedules, err := h.maintenanceRepo.FindByFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	views := make([]MaintenanceView, 0, len(schedules))
	for _, m := range schedules {
		views = append(views, MaintenanceView{
			ID:         m.ID,
			FacilityID: m.FacilityID,
			StartTime:  m.Window.Start,
			EndTime:    m.Window.End,
			Reason:     m.Reason,
		})
	}
	return views, nil
}
