package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/billing/domain"
)

// PlanView is the read model for a subscription plan.
type PlanView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	SubscriberType string    `json:"subscriber_type"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	BillingPeriod  string    `json:"billing_period"`
	GraceDays      int       `json:"grace_days"`
	Active         bool      `json:"active"`
}

// ListPlansHandler returns the plan catalog.
type ListPlansHandler struct {
	planRepo domain.PlanRepository
}

// NewListPlansHandler creates a new ListPlansHandler.
func NewListPlansHandler(planRepo domain.PlanRepository) *ListPlansHandler {
	return &ListPlansHandler{planRepo: planRepo}
}

// Handle lists every plan, active or not.
func (h *ListPlansHandler) Handle(ctx context.Context) ([]PlanView, error) {
	plans, err := h.planRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PlanView, 0, len(plans))
	for _, plan := range plans {
		views = append(views, PlanView{
			ID:             plan.ID(),
			Name:           plan.Name,
			SubscriberType: string(plan.SubscriberType),
			AmountCents:    plan.AmountCents,
			Currency:       plan.Currency,
			BillingPeriod:  string(plan.BillingPeriod),
			GraceDays:      plan.GraceDays,
			Active:         plan.Active,
		})
	}
	return views, nil
}
