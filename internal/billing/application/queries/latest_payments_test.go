package queries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sportsms/courtside/internal/billing/domain"
)

// mockQueryPaymentRepo is a mock implementation of domain.PaymentRepository.
type mockQueryPaymentRepo struct {
	mock.Mock
}

func (m *mockQueryPaymentRepo) Save(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockQueryPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *mockQueryPaymentRepo) FindLatestSettled(ctx context.Context, limit int) ([]*domain.Payment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

func settledPayment(t *testing.T) *domain.Payment {
	t.Helper()
	p, err := domain.NewPayment(uuid.New(), domain.ProviderStripe, 49900, "EUR", time.Now())
	require.NoError(t, err)
	p.RecordVerification(domain.PaymentPaid, time.Now())
	return p
}

func TestLatestPaymentsHandler_Handle(t *testing.T) {
	t.Run("maps settled payments to views", func(t *testing.T) {
		payment := settledPayment(t)
		repo := new(mockQueryPaymentRepo)
		handler := NewLatestPaymentsHandler(repo)

		ctx := context.Background()
		repo.On("FindLatestSettled", ctx, 5).Return([]*domain.Payment{payment}, nil)

		views, err := handler.Handle(ctx, 5)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, payment.ID(), views[0].ID)
		assert.Equal(t, "STRIPE", views[0].Provider)
		assert.Equal(t, "PAID", views[0].Status)
		require.NotNil(t, views[0].PaidAt)
	})

	t.Run("non-positive limit falls back to ten", func(t *testing.T) {
		repo := new(mockQueryPaymentRepo)
		handler := NewLatestPaymentsHandler(repo)

		ctx := context.Background()
		repo.On("FindLatestSettled", ctx, 10).Return([]*domain.Payment{}, nil)

		views, err := handler.Handle(ctx, 0)

		require.NoError(t, err)
		assert.Empty(t, views)
		repo.AssertExpectations(t)
	})
}
