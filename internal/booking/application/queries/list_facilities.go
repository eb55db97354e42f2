package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/booking/domain"
)

// FacilityView is the read model for a facility.
type FacilityView struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Location          string     `json:"location"`
	Capacity          *int       `json:"capacity,omitempty"`
	PricePerHourCents int64      `json:"price_per_hour_cents"`
	Status            string     `json:"status"`
	OwnerClubID       *uuid.UUID `json:"owner_club_id,omitempty"`
}

// ListFacilitiesHandler returns every facility.
type ListFacilitiesHandler struct {
	facilityRepo domain.FacilityRepository
}

// NewListFacilitiesHandler creates a new ListFacilitiesHandler.
func NewListFacilitiesHandler(facilityRepo domain.FacilityRepository) *ListFacilitiesHandler {
	return &ListFacilitiesHandler{facilityRepo: facilityRepo}
}

// Handle lists every facility.
func (h *ListFacilitiesHandler) Handle(ctx context.Context) ([]FacilityView, error) {
	facilities, err := h.facilityRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]FacilityView, 0, len(facilities))
	for _, f := range facilities {
		views = append(views, FacilityView{
			ID:                f.ID(),
			Name:              f.Name,
			Location:          f.Location,
			Capacity:          f.Capacity,
			PricePerHourCents: f.PricePerHourCents,
			Status:            string(f.Status),
			OwnerClubID:       f.OwnerClubID,
		})
	}
	return views, nil
}
