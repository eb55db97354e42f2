package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/billing/domain"
)

// CreatePlanCommand contains the reference data for a new plan.
type CreatePlanCommand struct {
	Name           string
	SubscriberType string
	AmountCents    int64
	Currency       string
	BillingPeriod  string
	GraceDays      int
	Active         bool
}

// CreatePlanHandler handles the CreatePlanCommand.
type CreatePlanHandler struct {
	planRepo domain.PlanRepository
}

// NewCreatePlanHandler creates a new CreatePlanHandler.
func NewCreatePlanHandler(planRepo domain.PlanRepository) *CreatePlanHandler {
	return &CreatePlanHandler{planRepo: planRepo}
}

// Handle executes the CreatePlanCommand.
func (h *CreatePlanHandler) Handle(ctx context.Context, cmd CreatePlanCommand) (uuid.UUID, error) {
	plan, err := domain.NewPlan(
		cmd.Name,
		domain.SubscriberType(cmd.SubscriberType),
		cmd.AmountCents,
		cmd.Currency,
		domain.BillingPeriod(cmd.BillingPeriod),
		cmd.GraceDays,
		cmd.Active,
	)
	if err != nil {
		return uuid.Nil, err
	}

	if err := h.planRepo.Save(ctx, plan); err != nil {
		return uuid.Nil, err
	}

	return plan.ID(), nil
}
