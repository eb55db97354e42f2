package domain

import (
	"time"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// TimeRange is a half-open interval [Start, End). Touching ranges share no
// instant and therefore never overlap.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange creates a time range, rejecting empty or inverted windows.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, sharedDomain.ValidationError("end time must be after start time")
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether the two ranges share any instant.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// OverlapsAny reports whether the range conflicts with any of the given
// ranges. The check is existential; the first hit wins.
func (r TimeRange) OverlapsAny(others []TimeRange) bool {
	for _, other := range others {
		if r.Overlaps(other) {
			return true
		}
	}
	return false
}
