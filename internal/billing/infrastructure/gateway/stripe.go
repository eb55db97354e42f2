package gateway

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"

	"github.com/sportsms/courtside/internal/billing/domain"
)

// StripeGateway verifies payments against Stripe payment intents. The
// payment reference doubles as the payment intent ID.
type StripeGateway struct{}

// NewStripeGateway creates a new StripeGateway. The API key is process-wide
// per the Stripe SDK.
func NewStripeGateway(apiKey string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{}
}

// Verify fetches the payment intent and maps its status to a settlement
// verdict. Intents still in flight stay PENDING.
func (g *StripeGateway) Verify(_ context.Context, payment *domain.Payment) (domain.VerificationResult, error) {
	pi, err := paymentintent.Get(payment.Reference, nil)
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("failed to get payment intent: %w", err)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return domain.VerificationResult{
			Status:  domain.PaymentPaid,
			Message: "payment intent succeeded",
		}, nil
	case stripe.PaymentIntentStatusCanceled:
		return domain.VerificationResult{
			Status:  domain.PaymentFailed,
			Message: "payment intent canceled",
		}, nil
	default:
		return domain.VerificationResult{
			Status:  domain.PaymentPending,
			Message: fmt.Sprintf("payment intent %s", pi.Status),
		}, nil
	}
}
