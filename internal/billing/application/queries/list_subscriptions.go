package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/billing/domain"
)

// SubscriptionView is the read model for a subscription.
type SubscriptionView struct {
	ID             uuid.UUID `json:"id"`
	SubscriberType string    `json:"subscriber_type"`
	SubscriberID   uuid.UUID `json:"subscriber_id"`
	PlanID         uuid.UUID `json:"plan_id"`
	Status         string    `json:"status"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	GraceEndDate   time.Time `json:"grace_end_date"`
	AutoRenew      bool      `json:"auto_renew"`
}

// ListSubscriptionsHandler returns all subscriptions.
type ListSubscriptionsHandler struct {
	subscRepo domain.SubscriptionRepository
}

// NewListSubscriptionsHandler creates a new ListSubscriptionsHandler.
func NewListSubscriptionsHandler(subscRepo domain.SubscriptionRepository) *ListSubscriptionsHandler {
	return &ListSubscriptionsHandler{subscRepo: subscRepo}
}

// Handle lists every subscription with its persisted status. Statuses are
// not recomputed here; the sweep owns transitions.
func (h *ListSubscriptionsHandler) Handle(ctx context.Context) ([]SubscriptionView, error) {
	subscriptions, err := h.subscRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]SubscriptionView, 0, len(subscriptions))
	for _, s := range subscriptions {
		views = append(views, SubscriptionView{
			ID:             s.ID(),
			SubscriberType: string(s.SubscriberType()),
			SubscriberID:   s.SubscriberID(),
			PlanID:         s.PlanID(),
			Status:         string(s.Status()),
			StartDate:      s.StartDate(),
			EndDate:        s.EndDate(),
			GraceEndDate:   s.GraceEndDate(),
			AutoRenew:      s.AutoRenew(),
		})
	}
	return views, nil
}
