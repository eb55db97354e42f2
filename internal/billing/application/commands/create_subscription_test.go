package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/outbox"
)

// mockPlanRepo is a mock implementation of domain.PlanRepository.
type mockPlanRepo struct {
	mock.Mock
}

func (m *mockPlanRepo) Save(ctx context.Context, plan *domain.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *mockPlanRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *mockPlanRepo) FindAll(ctx context.Context) ([]*domain.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Plan), args.Error(1)
}

// mockSubscriptionRepo is a mock implementation of domain.SubscriptionRepository.
type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Save(ctx context.Context, subscription *domain.Subscription) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) FindAll(ctx context.Context) ([]*domain.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subscription), args.Error(1)
}

// mockPaymentRepo is a mock implementation of domain.PaymentRepository.
type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Save(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *mockPaymentRepo) FindLatestSettled(ctx context.Context, limit int) ([]*domain.Payment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

// mockInvoiceRepo is a mock implementation of domain.InvoiceRepository.
type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) Save(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *mockInvoiceRepo) HasOverdue(ctx context.Context, subscriptionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, subscriptionID)
	return args.Bool(0), args.Error(1)
}

// mockOutboxRepo is a mock implementation of outbox.Repository.
type mockOutboxRepo struct {
	mock.Mock
}

func (m *mockOutboxRepo) Save(ctx context.Context, msg *outbox.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockOutboxRepo) SaveBatch(ctx context.Context, msgs []*outbox.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *mockOutboxRepo) GetUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*outbox.Message), args.Error(1)
}

func (m *mockOutboxRepo) MarkPublished(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOutboxRepo) MarkFailed(ctx context.Context, id int64, err string, nextRetryAt time.Time) error {
	args := m.Called(ctx, id, err, nextRetryAt)
	return args.Error(0)
}

func (m *mockOutboxRepo) MarkDead(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *mockOutboxRepo) DeleteOld(ctx context.Context, olderThanDays int) (int64, error) {
	args := m.Called(ctx, olderThanDays)
	return args.Get(0).(int64), args.Error(1)
}

// mockUnitOfWork is a mock implementation of UnitOfWork.
type mockUnitOfWork struct {
	mock.Mock
}

func (m *mockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *mockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// mockGateway is a mock implementation of domain.PaymentGateway.
type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Verify(ctx context.Context, payment *domain.Payment) (domain.VerificationResult, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(domain.VerificationResult), args.Error(1)
}

// mockGatewayRegistry is a mock implementation of domain.GatewayRegistry.
type mockGatewayRegistry struct {
	mock.Mock
}

func (m *mockGatewayRegistry) For(provider domain.PaymentProvider) (domain.PaymentGateway, error) {
	args := m.Called(provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PaymentGateway), args.Error(1)
}

func testClock() sharedDomain.Clock {
	return sharedDomain.FixedClock{Instant: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
}

func testPlan(t *testing.T, period domain.BillingPeriod, graceDays int) *domain.Plan {
	t.Helper()
	plan, err := domain.NewPlan("Club Gold", domain.SubscriberClub, 49900, "EUR", period, graceDays, true)
	require.NoError(t, err)
	return plan
}

func TestCreateSubscriptionHandler_Handle(t *testing.T) {
	subscriberID := uuid.New()

	t.Run("creates subscription and invoice in one transaction", func(t *testing.T) {
		plan := testPlan(t, domain.BillingMonthly, 5)
		planRepo := new(mockPlanRepo)
		subscRepo := new(mockSubscriptionRepo)
		invoiceRepo := new(mockInvoiceRepo)
		outboxRepo := new(mockOutboxRepo)
		uow := new(mockUnitOfWork)
		handler := NewCreateSubscriptionHandler(planRepo, subscRepo, invoiceRepo, outboxRepo, uow, testClock())

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		planRepo.On("FindByID", ctx, plan.ID()).Return(plan, nil)
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		subscRepo.On("Save", txCtx, mock.AnythingOfType("*domain.Subscription")).Return(nil)
		invoiceRepo.On("Save", txCtx, mock.AnythingOfType("*domain.Invoice")).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.MatchedBy(func(msgs []*outbox.Message) bool {
			return len(msgs) == 2
		})).Return(nil)

		cmd := CreateSubscriptionCommand{
			SubscriberType: "CLUB",
			SubscriberID:   subscriberID,
			PlanID:         plan.ID(),
			AutoRenew:      true,
		}

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEqual(t, uuid.Nil, result.SubscriptionID)
		assert.NotEqual(t, uuid.Nil, result.InvoiceID)
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), result.StartDate)
		assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), result.EndDate)
		assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), result.GraceEndDate)

		planRepo.AssertExpectations(t)
		subscRepo.AssertExpectations(t)
		invoiceRepo.AssertExpectations(t)
		outboxRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("one-time plan gets a one-day window", func(t *testing.T) {
		plan := testPlan(t, domain.BillingOneTime, 0)
		planRepo := new(mockPlanRepo)
		subscRepo := new(mockSubscriptionRepo)
		invoiceRepo := new(mockInvoiceRepo)
		outboxRepo := new(mockOutboxRepo)
		uow := new(mockUnitOfWork)
		handler := NewCreateSubscriptionHandler(planRepo, subscRepo, invoiceRepo, outboxRepo, uow, testClock())

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		planRepo.On("FindByID", ctx, plan.ID()).Return(plan, nil)
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		subscRepo.On("Save", txCtx, mock.Anything).Return(nil)
		invoiceRepo.On("Save", txCtx, mock.Anything).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.Anything).Return(nil)

		result, err := handler.Handle(ctx, CreateSubscriptionCommand{
			SubscriberType: "CLUB",
			SubscriberID:   subscriberID,
			PlanID:         plan.ID(),
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), result.EndDate)
		assert.Equal(t, result.EndDate, result.GraceEndDate)
	})

	t.Run("unknown plan", func(t *testing.T) {
		planRepo := new(mockPlanRepo)
		handler := NewCreateSubscriptionHandler(planRepo, new(mockSubscriptionRepo), new(mockInvoiceRepo), new(mockOutboxRepo), new(mockUnitOfWork), testClock())

		ctx := context.Background()
		planID := uuid.New()
		planRepo.On("FindByID", ctx, planID).Return(nil, sharedDomain.NotFoundError("plan not found"))

		_, err := handler.Handle(ctx, CreateSubscriptionCommand{
			SubscriberType: "CLUB",
			SubscriberID:   subscriberID,
			PlanID:         planID,
		})

		assert.ErrorIs(t, err, sharedDomain.ErrNotFound)
	})

	t.Run("unknown subscriber type", func(t *testing.T) {
		plan := testPlan(t, domain.BillingMonthly, 5)
		planRepo := new(mockPlanRepo)
		handler := NewCreateSubscriptionHandler(planRepo, new(mockSubscriptionRepo), new(mockInvoiceRepo), new(mockOutboxRepo), new(mockUnitOfWork), testClock())

		ctx := context.Background()
		planRepo.On("FindByID", ctx, plan.ID()).Return(plan, nil)

		_, err := handler.Handle(ctx, CreateSubscriptionCommand{
			SubscriberType: "TEAM",
			SubscriberID:   subscriberID,
			PlanID:         plan.ID(),
		})

		assert.ErrorIs(t, err, sharedDomain.ErrValidation)
	})

	t.Run("rolls back when invoice save fails", func(t *testing.T) {
		plan := testPlan(t, domain.BillingMonthly, 5)
		planRepo := new(mockPlanRepo)
		subscRepo := new(mockSubscriptionRepo)
		invoiceRepo := new(mockInvoiceRepo)
		uow := new(mockUnitOfWork)
		handler := NewCreateSubscriptionHandler(planRepo, subscRepo, invoiceRepo, new(mockOutboxRepo), uow, testClock())

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")
		saveErr := errors.New("disk full")

		planRepo.On("FindByID", ctx, plan.ID()).Return(plan, nil)
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		subscRepo.On("Save", txCtx, mock.Anything).Return(nil)
		invoiceRepo.On("Save", txCtx, mock.Anything).Return(saveErr)

		_, err := handler.Handle(ctx, CreateSubscriptionCommand{
			SubscriberType: "CLUB",
			SubscriberID:   subscriberID,
			PlanID:         plan.ID(),
		})

		assert.ErrorIs(t, err, saveErr)
		uow.AssertExpectations(t)
	})
}
