package domain

import (
	"time"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// BillingPeriod determines how a plan's validity window is computed.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "MONTHLY"
	BillingAnnual  BillingPeriod = "ANNUAL"
	BillingOneTime BillingPeriod = "ONE_TIME"
)

// SubscriberType categorizes who a plan is sold to.
type SubscriberType string

const (
	SubscriberClub   SubscriberType = "CLUB"
	SubscriberPlayer SubscriberType = "PLAYER"
	SubscriberLeague SubscriberType = "LEAGUE"
)

// Plan is static billing reference data. Once a live subscription references
// a plan, mutating it only affects future subscriptions; dates already
// computed from it never change.
type Plan struct {
	sharedDomain.BaseEntity
	Name           string
	SubscriberType SubscriberType
	AmountCents    int64
	Currency       string
	BillingPeriod  BillingPeriod
	GraceDays      int
	Active         bool
}

// NewPlan creates a plan after validating its reference data.
func NewPlan(name string, subscriberType SubscriberType, amountCents int64, currency string, period BillingPeriod, graceDays int, active bool) (*Plan, error) {
	if name == "" {
		return nil, sharedDomain.ValidationError("plan name is required")
	}
	if amountCents < 0 {
		return nil, sharedDomain.ValidationError("plan amount must not be negative")
	}
	if currency == "" {
		return nil, sharedDomain.ValidationError("plan currency is required")
	}
	if graceDays < 0 {
		return nil, sharedDomain.ValidationError("grace days must not be negative")
	}
	switch period {
	case BillingMonthly, BillingAnnual, BillingOneTime:
	default:
		return nil, sharedDomain.ValidationError("unknown billing period")
	}

	return &Plan{
		BaseEntity:     sharedDomain.NewBaseEntity(),
		Name:           name,
		SubscriberType: subscriberType,
		AmountCents:    amountCents,
		Currency:       currency,
		BillingPeriod:  period,
		GraceDays:      graceDays,
		Active:         active,
	}, nil
}

// PeriodEnd computes the subscription end date for a period starting at from.
// ONE_TIME plans get a one-day validity window.
func (p *Plan) PeriodEnd(from time.Time) time.Time {
	switch p.BillingPeriod {
	case BillingMonthly:
		return from.AddDate(0, 1, 0)
	case BillingAnnual:
		return from.AddDate(1, 0, 0)
	default: // BillingOneTime
		return from.AddDate(0, 0, 1)
	}
}

// GraceEnd computes the grace window end for a period ending at end.
func (p *Plan) GraceEnd(end time.Time) time.Time {
	return end.AddDate(0, 0, p.GraceDays)
}
