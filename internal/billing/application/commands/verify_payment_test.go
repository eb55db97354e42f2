package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func suspendedSubscription(t *testing.T) *domain.Subscription {
	t.Helper()
	plan := testPlan(t, domain.BillingMonthly, 5)
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	s, err := domain.NewSubscription(domain.SubscriberClub, uuid.New(), plan, false, start)
	require.NoError(t, err)
	require.True(t, s.Reevaluate(start.AddDate(0, 2, 0)))
	require.Equal(t, domain.SubscriptionSuspended, s.Status())
	s.ClearDomainEvents()
	return s
}

func pendingPayment(t *testing.T, subscriptionID uuid.UUID) *domain.Payment {
	t.Helper()
	p, err := domain.NewPayment(subscriptionID, domain.ProviderStripe, 49900, "EUR", time.Now())
	require.NoError(t, err)
	return p
}

func TestVerifyPaymentHandler_Handle(t *testing.T) {
	t.Run("settles payment and reactivates subscription atomically", func(t *testing.T) {
		subscription := suspendedSubscription(t)
		payment := pendingPayment(t, subscription.ID())

		paymentRepo := new(mockPaymentRepo)
		subscRepo := new(mockSubscriptionRepo)
		gateway := new(mockGateway)
		registry := new(mockGatewayRegistry)
		outboxRepo := new(mockOutboxRepo)
		uow := new(mockUnitOfWork)
		handler := NewVerifyPaymentHandler(paymentRepo, subscRepo, registry, outboxRepo, uow, testClock(), discardLogger())

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		paymentRepo.On("FindByID", ctx, payment.ID()).Return(payment, nil)
		registry.On("For", domain.ProviderStripe).Return(gateway, nil)
		gateway.On("Verify", ctx, payment).Return(domain.VerificationResult{
			Status:  domain.PaymentPaid,
			Message: "payment intent succeeded",
		}, nil)
		subscRepo.On("FindByID", ctx, subscription.ID()).Return(subscription, nil)
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		paymentRepo.On("Save", txCtx, payment).Return(nil)
		subscRepo.On("Save", txCtx, subscription).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.MatchedBy(func(msgs []*outbox.Message) bool {
			// PaymentVerified plus SubscriptionStatusChanged
			return len(msgs) == 2
		})).Return(nil)

		result, err := handler.Handle(ctx, VerifyPaymentCommand{PaymentID: payment.ID()})

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPaid, result.Status)
		assert.Equal(t, "payment intent succeeded", result.Message)
		assert.Equal(t, domain.SubscriptionActive, subscription.Status())
		require.NotNil(t, payment.PaidAt)

		paymentRepo.AssertExpectations(t)
		subscRepo.AssertExpectations(t)
		gateway.AssertExpectations(t)
		outboxRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("failed verdict leaves subscription untouched", func(t *testing.T) {
		subscription := suspendedSubscription(t)
		payment := pendingPayment(t, subscription.ID())

		paymentRepo := new(mockPaymentRepo)
		subscRepo := new(mockSubscriptionRepo)
		gateway := new(mockGateway)
		registry := new(mockGatewayRegistry)
		outboxRepo := new(mockOutboxRepo)
		uow := new(mockUnitOfWork)
		handler := NewVerifyPaymentHandler(paymentRepo, subscRepo, registry, outboxRepo, uow, testClock(), discardLogger())

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		paymentRepo.On("FindByID", ctx, payment.ID()).Return(payment, nil)
		registry.On("For", domain.ProviderStripe).Return(gateway, nil)
		gateway.On("Verify", ctx, payment).Return(domain.VerificationResult{
			Status:  domain.PaymentFailed,
			Message: "card declined",
		}, nil)
		subscRepo.On("FindByID", ctx, subscription.ID()).Return(subscription, nil)
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		paymentRepo.On("Save", txCtx, payment).Return(nil)
		outboxRepo.On("SaveBatch", txCtx, mock.MatchedBy(func(msgs []*outbox.Message) bool {
			return len(msgs) == 1
		})).Return(nil)

		result, err := handler.Handle(ctx, VerifyPaymentCommand{PaymentID: payment.ID()})

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentFailed, result.Status)
		assert.Equal(t, domain.SubscriptionSuspended, subscription.Status())
		assert.Nil(t, payment.PaidAt)
		subscRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("already verified payment short-circuits without gateway call", func(t *testing.T) {
		subscription := suspendedSubscription(t)
		payment := pendingPayment(t, subscription.ID())
		payment.RecordVerification(domain.PaymentPaid, time.Now())

		paymentRepo := new(mockPaymentRepo)
		registry := new(mockGatewayRegistry)
		handler := NewVerifyPaymentHandler(paymentRepo, new(mockSubscriptionRepo), registry, new(mockOutboxRepo), new(mockUnitOfWork), testClock(), discardLogger())

		ctx := context.Background()
		paymentRepo.On("FindByID", ctx, payment.ID()).Return(payment, nil)

		result, err := handler.Handle(ctx, VerifyPaymentCommand{PaymentID: payment.ID()})

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPaid, result.Status)
		assert.Equal(t, "payment already verified", result.Message)
		registry.AssertNotCalled(t, "For", mock.Anything)
	})

	t.Run("gateway error keeps payment pending", func(t *testing.T) {
		subscription := suspendedSubscription(t)
		payment := pendingPayment(t, subscription.ID())

		paymentRepo := new(mockPaymentRepo)
		gateway := new(mockGateway)
		registry := new(mockGatewayRegistry)
		uow := new(mockUnitOfWork)
		handler := NewVerifyPaymentHandler(paymentRepo, new(mockSubscriptionRepo), registry, new(mockOutboxRepo), uow, testClock(), discardLogger())

		ctx := context.Background()
		gatewayErr := errors.New("provider unreachable")

		paymentRepo.On("FindByID", ctx, payment.ID()).Return(payment, nil)
		registry.On("For", domain.ProviderStripe).Return(gateway, nil)
		gateway.On("Verify", ctx, payment).Return(domain.VerificationResult{}, gatewayErr)

		_, err := handler.Handle(ctx, VerifyPaymentCommand{PaymentID: payment.ID()})

		assert.ErrorIs(t, err, gatewayErr)
		assert.Equal(t, domain.PaymentPending, payment.Status)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("unknown payment", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepo)
		handler := NewVerifyPaymentHandler(paymentRepo, new(mockSubscriptionRepo), new(mockGatewayRegistry), new(mockOutboxRepo), new(mockUnitOfWork), testClock(), discardLogger())

		ctx := context.Background()
		paymentID := uuid.New()
		paymentRepo.On("FindByID", ctx, paymentID).Return(nil, sharedDomain.NotFoundError("payment not found"))

		_, err := handler.Handle(ctx, VerifyPaymentCommand{PaymentID: paymentID})

		assert.ErrorIs(t, err, sharedDomain.ErrNotFound)
	})
}
