package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riskSubscription(t *testing.T, start time.Time) *Subscription {
	t.Helper()
	plan, err := NewPlan("Player Basic", SubscriberPlayer, 9900, "EUR", BillingMonthly, 5, true)
	require.NoError(t, err)
	s, err := NewSubscription(SubscriberPlayer, uuid.New(), plan, false, start)
	require.NoError(t, err)
	return s
}

func TestOverdueDays(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s := riskSubscription(t, start)
	// endDate 2026-04-10

	assert.Equal(t, 0, OverdueDays(s, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, OverdueDays(s, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, OverdueDays(s, time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 10, OverdueDays(s, time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)))
}

func TestRiskScore(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s := riskSubscription(t, start)
	// endDate 2026-04-10

	tests := []struct {
		name        string
		today       time.Time
		hasOverdue  bool
		wantScore   int
		wantOverdue int
	}{
		{"current subscription", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), false, 0, 0},
		{"current with overdue invoice", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), true, 20, 0},
		{"ten days overdue", time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC), false, 50, 10},
		{"ten days overdue with invoice", time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC), true, 70, 10},
		{"clamped at hundred", time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), false, 100, 30},
		{"clamped with invoice bonus", time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), true, 100, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, overdueDays := RiskScore(s, tc.hasOverdue, tc.today)
			assert.Equal(t, tc.wantScore, score)
			assert.Equal(t, tc.wantOverdue, overdueDays)
		})
	}
}
