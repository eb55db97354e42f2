package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

func mustRange(t *testing.T, startHour, endHour int) TimeRange {
	t.Helper()
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	r, err := NewTimeRange(day.Add(time.Duration(startHour)*time.Hour), day.Add(time.Duration(endHour)*time.Hour))
	require.NoError(t, err)
	return r
}

func TestNewTimeRange(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := NewTimeRange(start, start.Add(time.Hour))
	assert.NoError(t, err)

	_, err = NewTimeRange(start, start)
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)

	_, err = NewTimeRange(start, start.Add(-time.Hour))
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{"identical", mustRange(t, 10, 12), mustRange(t, 10, 12), true},
		{"partial overlap", mustRange(t, 10, 12), mustRange(t, 11, 13), true},
		{"contained", mustRange(t, 10, 14), mustRange(t, 11, 12), true},
		{"touching end to start", mustRange(t, 10, 12), mustRange(t, 12, 14), false},
		{"touching start to end", mustRange(t, 12, 14), mustRange(t, 10, 12), false},
		{"disjoint", mustRange(t, 8, 9), mustRange(t, 10, 11), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestTimeRange_OverlapsAny(t *testing.T) {
	existing := []TimeRange{
		mustRange(t, 8, 9),
		mustRange(t, 12, 14),
		mustRange(t, 16, 18),
	}

	assert.True(t, mustRange(t, 13, 15).OverlapsAny(existing))
	assert.False(t, mustRange(t, 9, 12).OverlapsAny(existing))
	assert.False(t, mustRange(t, 10, 11).OverlapsAny(nil))
}
