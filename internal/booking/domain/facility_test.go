package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

func TestNewFacility(t *testing.T) {
	capacity := 200
	ownerClubID := uuid.New()

	f, err := NewFacility("Center Court", "Stadium North", &capacity, 12000, &ownerClubID)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, f.ID())
	assert.Equal(t, "Center Court", f.Name)
	assert.Equal(t, "Stadium North", f.Location)
	require.NotNil(t, f.Capacity)
	assert.Equal(t, 200, *f.Capacity)
	assert.Equal(t, int64(12000), f.PricePerHourCents)
	assert.Equal(t, FacilityActive, f.Status)
	require.NotNil(t, f.OwnerClubID)
	assert.Equal(t, ownerClubID, *f.OwnerClubID)
}

func TestNewFacility_OptionalFields(t *testing.T) {
	f, err := NewFacility("Practice Court", "", nil, 0, nil)

	require.NoError(t, err)
	assert.Nil(t, f.Capacity)
	assert.Nil(t, f.OwnerClubID)
}

func TestNewFacility_Invalid(t *testing.T) {
	zero := 0

	_, err := NewFacility("", "Stadium North", nil, 1000, nil)
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)

	_, err = NewFacility("Center Court", "Stadium North", nil, -1, nil)
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)

	_, err = NewFacility("Center Court", "Stadium North", &zero, 1000, nil)
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)
}
