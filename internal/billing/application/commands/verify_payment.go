package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedApplication "github.com/sportsms/courtside/internal/shared/application"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/outbox"
)

// VerifyPaymentCommand contains the data needed to verify a payment with its
// gateway.
type VerifyPaymentCommand struct {
	PaymentID uuid.UUID
}

// VerifyPaymentResult contains the settlement outcome.
type VerifyPaymentResult struct {
	PaymentID uuid.UUID
	Status    domain.PaymentStatus
	Message   string
}

// VerifyPaymentHandler handles the VerifyPaymentCommand.
type VerifyPaymentHandler struct {
	paymentRepo domain.PaymentRepository
	subscRepo   domain.SubscriptionRepository
	gateways    domain.GatewayRegistry
	outboxRepo  outbox.Repository
	uow         sharedApplication.UnitOfWork
	clock       sharedDomain.Clock
	logger      *slog.Logger
}

// NewVerifyPaymentHandler creates a new VerifyPaymentHandler.
func NewVerifyPaymentHandler(
	paymentRepo domain.PaymentRepository,
	subscRepo domain.SubscriptionRepository,
	gateways domain.GatewayRegistry,
	outboxRepo outbox.Repository,
	uow sharedApplication.UnitOfWork,
	clock sharedDomain.Clock,
	logger *slog.Logger,
) *VerifyPaymentHandler {
	return &VerifyPaymentHandler{
		paymentRepo: paymentRepo,
		subscRepo:   subscRepo,
		gateways:    gateways,
		outboxRepo:  outboxRepo,
		uow:         uow,
		clock:       clock,
		logger:      logger,
	}
}

// Handle executes the VerifyPaymentCommand. A payment that already left
// PENDING is returned as-is without calling the gateway. The gateway call
// happens outside the transaction; the payment verdict and any subscription
// reactivation commit atomically afterwards.
func (h *VerifyPaymentHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) (*VerifyPaymentResult, error) {
	payment, err := h.paymentRepo.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status != domain.PaymentPending {
		return &VerifyPaymentResult{
			PaymentID: payment.ID(),
			Status:    payment.Status,
			Message:   "payment already verified",
		}, nil
	}

	gateway, err := h.gateways.For(payment.Provider)
	if err != nil {
		return nil, err
	}

	verdict, err := gateway.Verify(ctx, payment)
	if err != nil {
		return nil, err
	}

	payment.RecordVerification(verdict.Status, h.clock.Now())

	subscription, err := h.subscRepo.FindByID(ctx, payment.SubscriptionID)
	if err != nil {
		return nil, err
	}

	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		if err := h.paymentRepo.Save(txCtx, payment); err != nil {
			return err
		}

		events := []sharedDomain.DomainEvent{domain.NewPaymentVerified(payment, verdict.Message)}

		if payment.Settled() {
			subscription.Reactivate()
			if err := h.subscRepo.Save(txCtx, subscription); err != nil {
				return err
			}
			events = append(events, subscription.DomainEvents()...)
		}

		sharedApplication.ApplyEventMetadata(events, sharedApplication.NewEventMetadata(subscription.SubscriberID()))

		msgs, err := outbox.FromEvents(events)
		if err != nil {
			return err
		}
		return h.outboxRepo.SaveBatch(txCtx, msgs)
	})
	if err != nil {
		return nil, err
	}

	subscription.ClearDomainEvents()

	h.logger.InfoContext(ctx, "payment verified",
		slog.String("payment_id", payment.ID().String()),
		slog.String("provider", string(payment.Provider)),
		slog.String("status", string(payment.Status)))

	return &VerifyPaymentResult{
		PaymentID: payment.ID(),
		Status:    payment.Status,
		Message:   verdict.Message,
	}, nil
}
