package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// CreatePaymentCommand contains the data needed to record a pending payment.
type CreatePaymentCommand struct {
	SubscriptionID uuid.UUID
	Provider       string
	AmountCents    int64
	Currency       string
}

// CreatePaymentResult contains the result of recording a payment.
type CreatePaymentResult struct {
	PaymentID uuid.UUID
	Reference string
}

// CreatePaymentHandler handles the CreatePaymentCommand.
type CreatePaymentHandler struct {
	subscRepo   domain.SubscriptionRepository
	paymentRepo domain.PaymentRepository
	clock       sharedDomain.Clock
}

// NewCreatePaymentHandler creates a new CreatePaymentHandler.
func NewCreatePaymentHandler(
	subscRepo domain.SubscriptionRepository,
	paymentRepo domain.PaymentRepository,
	clock sharedDomain.Clock,
) *CreatePaymentHandler {
	return &CreatePaymentHandler{
		subscRepo:   subscRepo,
		paymentRepo: paymentRepo,
		clock:       clock,
	}
}

// Handle executes the CreatePaymentCommand. The payment starts PENDING and
// transitions only through gateway verification.
func (h *CreatePaymentHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (*CreatePaymentResult, error) {
	subscription, err := h.subscRepo.FindByID(ctx, cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}

	payment, err := domain.NewPayment(
		subscription.ID(),
		domain.PaymentProvider(cmd.Provider),
		cmd.AmountCents,
		cmd.Currency,
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := h.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	return &CreatePaymentResult{
		PaymentID: payment.ID(),
		Reference: payment.Reference,
	}, nil
}
