package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

func bookingWindow(t *testing.T) TimeRange {
	t.Helper()
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	w, err := NewTimeRange(start, start.Add(2*time.Hour))
	require.NoError(t, err)
	return w
}

func TestNewFacilityBooking(t *testing.T) {
	facilityID := uuid.New()
	requestedBy := uuid.New()
	clubID := uuid.New()
	window := bookingWindow(t)

	b := NewFacilityBooking(facilityID, requestedBy, &clubID, window, true, "league final")

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, facilityID, b.FacilityID())
	assert.Equal(t, requestedBy, b.RequestedBy())
	require.NotNil(t, b.ClubID())
	assert.Equal(t, clubID, *b.ClubID())
	assert.Equal(t, window, b.Window())
	assert.Equal(t, BookingPending, b.Status())
	assert.True(t, b.PaymentRequired())
	assert.Nil(t, b.PaymentID())
	assert.Equal(t, "league final", b.Notes())
}

func TestNewFacilityBooking_EmitsEvent(t *testing.T) {
	window := bookingWindow(t)
	b := NewFacilityBooking(uuid.New(), uuid.New(), nil, window, false, "")

	events := b.DomainEvents()
	require.Len(t, events, 1)

	requested, ok := events[0].(*BookingRequested)
	require.True(t, ok)
	assert.Equal(t, b.ID(), requested.AggregateID())
	assert.Equal(t, b.FacilityID(), requested.FacilityID)
	assert.Equal(t, window.Start, requested.StartTime)
	assert.Equal(t, window.End, requested.EndTime)
}

func TestFacilityBooking_SetStatus(t *testing.T) {
	b := NewFacilityBooking(uuid.New(), uuid.New(), nil, bookingWindow(t), false, "")
	b.ClearDomainEvents()

	require.NoError(t, b.SetStatus(BookingApproved))
	assert.Equal(t, BookingApproved, b.Status())

	events := b.DomainEvents()
	require.Len(t, events, 1)
	changed, ok := events[0].(*BookingStatusChanged)
	require.True(t, ok)
	assert.Equal(t, string(BookingPending), changed.From)
	assert.Equal(t, string(BookingApproved), changed.To)
}

func TestFacilityBooking_SetStatus_SameStatusNoEvent(t *testing.T) {
	b := NewFacilityBooking(uuid.New(), uuid.New(), nil, bookingWindow(t), false, "")
	b.ClearDomainEvents()

	require.NoError(t, b.SetStatus(BookingPending))
	assert.Empty(t, b.DomainEvents())
}

func TestFacilityBooking_SetStatus_Unknown(t *testing.T) {
	b := NewFacilityBooking(uuid.New(), uuid.New(), nil, bookingWindow(t), false, "")

	err := b.SetStatus(BookingStatus("ARCHIVED"))
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)
	assert.Equal(t, BookingPending, b.Status())
}

func TestFacilityBooking_AttachPayment(t *testing.T) {
	b := NewFacilityBooking(uuid.New(), uuid.New(), nil, bookingWindow(t), true, "")

	paymentID := uuid.New()
	b.AttachPayment(paymentID)

	require.NotNil(t, b.PaymentID())
	assert.Equal(t, paymentID, *b.PaymentID())
}
