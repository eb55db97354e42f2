package queries

import (
	"context"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// RiskScoresHandler computes the delinquency score for every subscription.
type RiskScoresHandler struct {
	subscRepo   domain.SubscriptionRepository
	invoiceRepo domain.InvoiceRepository
	clock       sharedDomain.Clock
}

// NewRiskScoresHandler creates a new RiskScoresHandler.
func NewRiskScoresHandler(
	subscRepo domain.SubscriptionRepository,
	invoiceRepo domain.InvoiceRepository,
	clock sharedDomain.Clock,
) *RiskScoresHandler {
	return &RiskScoresHandler{
		subscRepo:   subscRepo,
		invoiceRepo: invoiceRepo,
		clock:       clock,
	}
}

// Handle scores every subscription against today. Scores are computed on
// read and never persisted.
func (h *RiskScoresHandler) Handle(ctx context.Context) ([]domain.RiskItem, error) {
	subscriptions, err := h.subscRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := sharedDomain.Today(h.clock)
	items := make([]domain.RiskItem, 0, len(subscriptions))
	for _, s := range subscriptions {
		hasOverdue, err := h.invoiceRepo.HasOverdue(ctx, s.ID())
		if err != nil {
			return nil, err
		}
		score, overdueDays := domain.RiskScore(s, hasOverdue, today)
		items = append(items, domain.RiskItem{
			SubscriptionID: s.ID().String(),
			RiskScore:      score,
			OverdueDays:    overdueDays,
		})
	}
	return items, nil
}
