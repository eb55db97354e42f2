package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/booking/domain"
	"github.com/sportsms/courtside/internal/directory"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// CreateFacilityCommand contains the reference data for a new facility.
type CreateFacilityCommand struct {
	Name              string
	Location          string
	Capacity          *int
	PricePerHourCents int64
	OwnerClubID       *uuid.UUID
}

// CreateFacilityHandler handles the CreateFacilityCommand.
type CreateFacilityHandler struct {
	facilityRepo domain.FacilityRepository
	directory    directory.Directory
}

// NewCreateFacilityHandler creates a new CreateFacilityHandler.
func NewCreateFacilityHandler(facilityRepo domain.FacilityRepository, dir directory.Directory) *CreateFacilityHandler {
	return &CreateFacilityHandler{facilityRepo: facilityRepo, directory: dir}
}

// Handle executes the CreateFacilityCommand.
func (h *CreateFacilityHandler) Handle(ctx context.Context, cmd CreateFacilityCommand) (uuid.UUID, error) {
	if cmd.OwnerClubID != nil {
		if ok, err := h.directory.ClubExists(ctx, *cmd.OwnerClubID); err != nil {
			return uuid.Nil, err
		} else if !ok {
			return uuid.Nil, sharedDomain.NotFoundError("club not found")
		}
	}

	facility, err := domain.NewFacility(cmd.Name, cmd.Location, cmd.Capacity, cmd.PricePerHourCents, cmd.OwnerClubID)
	if err != nil {
		return uuid.Nil, err
	}

	if err := h.facilityRepo.Save(ctx, facility); err != nil {
		return uuid.Nil, err
	}

	return facility.ID(), nil
}
