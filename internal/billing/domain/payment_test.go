package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

func TestNewPayment(t *testing.T) {
	subscriptionID := uuid.New()
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	p, err := NewPayment(subscriptionID, ProviderStripe, 49900, "EUR", now)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, subscriptionID, p.SubscriptionID)
	assert.Equal(t, ProviderStripe, p.Provider)
	assert.Equal(t, int64(49900), p.AmountCents)
	assert.Equal(t, "EUR", p.Currency)
	assert.Equal(t, fmt.Sprintf("PAY-%d", now.UnixMilli()), p.Reference)
	assert.Equal(t, PaymentPending, p.Status)
	assert.Nil(t, p.PaidAt)
}

func TestNewPayment_Invalid(t *testing.T) {
	subscriptionID := uuid.New()
	now := time.Now()

	_, err := NewPayment(subscriptionID, PaymentProvider("BITCOIN"), 1000, "EUR", now)
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)

	_, err = NewPayment(subscriptionID, ProviderManual, 0, "EUR", now)
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)

	_, err = NewPayment(subscriptionID, ProviderManual, 1000, "", now)
	assert.ErrorIs(t, err, sharedDomain.ErrValidation)
}

func TestPayment_RecordVerification(t *testing.T) {
	p, err := NewPayment(uuid.New(), ProviderPayFast, 1000, "ZAR", time.Now())
	require.NoError(t, err)

	at := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	p.RecordVerification(PaymentPaid, at)

	assert.Equal(t, PaymentPaid, p.Status)
	require.NotNil(t, p.PaidAt)
	assert.Equal(t, at, *p.PaidAt)
	assert.True(t, p.Settled())
}

func TestPayment_RecordVerification_Failed(t *testing.T) {
	p, err := NewPayment(uuid.New(), ProviderMobileMoney, 1000, "KES", time.Now())
	require.NoError(t, err)

	p.RecordVerification(PaymentFailed, time.Now())

	assert.Equal(t, PaymentFailed, p.Status)
	assert.Nil(t, p.PaidAt)
	assert.False(t, p.Settled())
}

func TestKnownProvider(t *testing.T) {
	for _, p := range []PaymentProvider{ProviderStripe, ProviderPayPal, ProviderPayFast, ProviderMobileMoney, ProviderManual} {
		assert.True(t, KnownProvider(p), string(p))
	}
	assert.False(t, KnownProvider(PaymentProvider("BITCOIN")))
	assert.False(t, KnownProvider(PaymentProvider("")))
}
