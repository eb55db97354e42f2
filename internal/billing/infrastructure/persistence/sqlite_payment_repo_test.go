package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

func TestSQLitePaymentRepository_SaveAndFindByID(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewSQLitePaymentRepository(db)
	ctx := context.Background()

	s, _ := newTestSubscription(t, db)
	require.NoError(t, NewSQLiteSubscriptionRepository(db).Save(ctx, s))

	payment, err := domain.NewPayment(s.ID(), domain.ProviderPayFast, 49900, "ZAR", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, payment))

	found, err := repo.FindByID(ctx, payment.ID())
	require.NoError(t, err)
	assert.Equal(t, payment.ID(), found.ID())
	assert.Equal(t, s.ID(), found.SubscriptionID)
	assert.Equal(t, domain.ProviderPayFast, found.Provider)
	assert.Equal(t, payment.Reference, found.Reference)
	assert.Equal(t, domain.PaymentPending, found.Status)
	assert.Nil(t, found.PaidAt)
}

func TestSQLitePaymentRepository_Save_RecordsSettlement(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewSQLitePaymentRepository(db)
	ctx := context.Background()

	s, _ := newTestSubscription(t, db)
	require.NoError(t, NewSQLiteSubscriptionRepository(db).Save(ctx, s))

	payment, err := domain.NewPayment(s.ID(), domain.ProviderStripe, 49900, "EUR", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, payment))

	paidAt := time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC)
	payment.RecordVerification(domain.PaymentPaid, paidAt)
	require.NoError(t, repo.Save(ctx, payment))

	found, err := repo.FindByID(ctx, payment.ID())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, found.Status)
	require.NotNil(t, found.PaidAt)
	assert.Equal(t, paidAt, *found.PaidAt)
}

func TestSQLitePaymentRepository_FindLatestSettled(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewSQLitePaymentRepository(db)
	ctx := context.Background()

	s, _ := newTestSubscription(t, db)
	require.NoError(t, NewSQLiteSubscriptionRepository(db).Save(ctx, s))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var settled []*domain.Payment
	for i := 0; i < 3; i++ {
		p, err := domain.NewPayment(s.ID(), domain.ProviderStripe, 1000, "EUR", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		p.RecordVerification(domain.PaymentPaid, base.AddDate(0, 0, i))
		require.NoError(t, repo.Save(ctx, p))
		settled = append(settled, p)
	}

	pending, err := domain.NewPayment(s.ID(), domain.ProviderManual, 1000, "EUR", base)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, pending))

	latest, err := repo.FindLatestSettled(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	// Newest settlement first, pending payments excluded.
	assert.Equal(t, settled[2].ID(), latest[0].ID())
	assert.Equal(t, settled[1].ID(), latest[1].ID())
}

func TestSQLitePaymentRepository_FindLatestSettled_SubSecondOrdering(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewSQLitePaymentRepository(db)
	ctx := context.Background()

	s, _ := newTestSubscription(t, db)
	require.NoError(t, NewSQLiteSubscriptionRepository(db).Save(ctx, s))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	onSecond, err := domain.NewPayment(s.ID(), domain.ProviderStripe, 1000, "EUR", base)
	require.NoError(t, err)
	onSecond.RecordVerification(domain.PaymentPaid, base)
	require.NoError(t, repo.Save(ctx, onSecond))

	// Settled half a second later, so it must sort first.
	fractional, err := domain.NewPayment(s.ID(), domain.ProviderStripe, 1000, "EUR", base)
	require.NoError(t, err)
	fractional.RecordVerification(domain.PaymentPaid, base.Add(500*time.Millisecond))
	require.NoError(t, repo.Save(ctx, fractional))

	latest, err := repo.FindLatestSettled(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, fractional.ID(), latest[0].ID())
	assert.Equal(t, onSecond.ID(), latest[1].ID())
}

func TestSQLitePaymentRepository_FindByID_NotFound(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewSQLitePaymentRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, sharedDomain.ErrNotFound)
}
