package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/billing/domain"
)

// defaultLatestPaymentsLimit bounds the dashboard feed.
const defaultLatestPaymentsLimit = 10

// PaymentView is the read model for a settled payment.
type PaymentView struct {
	ID             uuid.UUID  `json:"id"`
	SubscriptionID uuid.UUID  `json:"subscription_id"`
	Provider       string     `json:"provider"`
	AmountCents    int64      `json:"amount_cents"`
	Currency       string     `json:"currency"`
	Reference      string     `json:"reference"`
	Status         string     `json:"status"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

// LatestPaymentsHandler returns the most recent settled payments.
type LatestPaymentsHandler struct {
	paymentRepo domain.PaymentRepository
}

// NewLatestPaymentsHandler creates a new LatestPaymentsHandler.
func NewLatestPaymentsHandler(paymentRepo domain.PaymentRepository) *LatestPaymentsHandler {
	return &LatestPaymentsHandler{paymentRepo: paymentRepo}
}

// Handle returns up to limit settled payments, newest first. A non-positive
// limit falls back to the default of ten.
func (h *LatestPaymentsHandler) Handle(ctx context.Context, limit int) ([]PaymentView, error) {
	if limit <= 0 {
		limit = defaultLatestPaymentsLimit
	}

	payments, err := h.paymentRepo.FindLatestSettled(ctx, limit)
	if err != nil {
		return nil, err
	}

	views := make([]PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, PaymentView{
			ID:             p.ID(),
			SubscriptionID: p.SubscriptionID,
			Provider:       string(p.Provider),
			AmountCents:    p.AmountCents,
			Currency:       p.Currency,
			Reference:      p.Reference,
			Status:         string(p.Status),
			PaidAt:         p.PaidAt,
		})
	}
	return views, nil
}
