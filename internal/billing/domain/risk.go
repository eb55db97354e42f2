package domain

import (
	"time"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

const (
	riskPointsPerOverdueDay = 5
	riskOverdueInvoiceBonus = 20
	riskMaxScore            = 100
)

// RiskItem is the delinquency indicator computed per subscription.
type RiskItem struct {
	SubscriptionID string `json:"subscription_id"`
	RiskScore      int    `json:"risk_score"`
	OverdueDays    int    `json:"overdue_days"`
}

// OverdueDays counts whole days the subscription is past its end date,
// zero when the end date has not passed.
func OverdueDays(s *Subscription, today time.Time) int {
	today = sharedDomain.DateOf(today)
	if !s.EndDate().Before(today) {
		return 0
	}
	return int(today.Sub(s.EndDate()).Hours() / 24)
}

// RiskScore computes the 0-100 delinquency score: five points per overdue
// day plus a flat 20 when the subscriber has any OVERDUE invoice, clamped
// at 100.
func RiskScore(s *Subscription, hasOverdueInvoice bool, today time.Time) (score, overdueDays int) {
	overdueDays = OverdueDays(s, today)
	score = overdueDays * riskPointsPerOverdueDay
	if hasOverdueInvoice {
		score += riskOverdueInvoiceBonus
	}
	if score > riskMaxScore {
		score = riskMaxScore
	}
	return score, overdueDays
}
