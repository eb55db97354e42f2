package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// PaymentProvider tags which gateway settles a payment.
type PaymentProvider string

const (
	ProviderStripe      PaymentProvider = "STRIPE"
	ProviderPayPal      PaymentProvider = "PAYPAL"
	ProviderPayFast     PaymentProvider = "PAYFAST"
	ProviderMobileMoney PaymentProvider = "MOBILE_MONEY"
	ProviderManual      PaymentProvider = "MANUAL"
)

// KnownProvider reports whether p is one of the supported provider tags.
func KnownProvider(p PaymentProvider) bool {
	switch p {
	case ProviderStripe, ProviderPayPal, ProviderPayFast, ProviderMobileMoney, ProviderManual:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// Payment records one settlement attempt against a subscription. It is
// created PENDING and transitions exactly once via gateway verification;
// PaidAt stays nil until the payment settles.
type Payment struct {
	sharedDomain.BaseEntity
	SubscriptionID uuid.UUID
	Provider       PaymentProvider
	AmountCents    int64
	Currency       string
	Reference      string
	Status         PaymentStatus
	PaidAt         *time.Time
}

// NewPayment creates a PENDING payment with a generated reference code.
func NewPayment(subscriptionID uuid.UUID, provider PaymentProvider, amountCents int64, currency string, now time.Time) (*Payment, error) {
	if !KnownProvider(provider) {
		return nil, sharedDomain.ValidationError("unknown payment provider")
	}
	if amountCents <= 0 {
		return nil, sharedDomain.ValidationError("payment amount must be positive")
	}
	if currency == "" {
		return nil, sharedDomain.ValidationError("payment currency is required")
	}

	return &Payment{
		BaseEntity:     sharedDomain.NewBaseEntity(),
		SubscriptionID: subscriptionID,
		Provider:       provider,
		AmountCents:    amountCents,
		Currency:       currency,
		Reference:      fmt.Sprintf("PAY-%d", now.UnixMilli()),
		Status:         PaymentPending,
	}, nil
}

// RecordVerification applies the gateway's verdict. The settlement timestamp
// is stamped only when the payment actually settled.
func (p *Payment) RecordVerification(status PaymentStatus, at time.Time) {
	p.Status = status
	if status == PaymentPaid {
		at = at.UTC()
		p.PaidAt = &at
	}
	p.Touch()
}

// Settled reports whether the payment reached PAID.
func (p *Payment) Settled() bool {
	return p.Status == PaymentPaid
}
