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

// RefreshStatusesResult summarizes one lifecycle sweep.
type RefreshStatusesResult struct {
	Evaluated    int
	Transitioned int
	Failed       int
}

// RefreshStatusesHandler runs the daily subscription lifecycle sweep.
type RefreshStatusesHandler struct {
	subscRepo  domain.SubscriptionRepository
	outboxRepo outbox.Repository
	uow        sharedApplication.UnitOfWork
	clock      sharedDomain.Clock
	logger     *slog.Logger
}

// NewRefreshStatusesHandler creates a new RefreshStatusesHandler.
func NewRefreshStatusesHandler(
	subscRepo domain.SubscriptionRepository,
	outboxRepo outbox.Repository,
	uow sharedApplication.UnitOfWork,
	clock sharedDomain.Clock,
	logger *slog.Logger,
) *RefreshStatusesHandler {
	return &RefreshStatusesHandler{
		subscRepo:  subscRepo,
		outboxRepo: outboxRepo,
		uow:        uow,
		clock:      clock,
		logger:     logger,
	}
}

// Handle reevaluates every subscription against today's date. Each record is
// committed in its own transaction so one bad row never blocks the sweep;
// failures are logged and counted. Running the sweep twice on the same day is
// a no-op for already-transitioned records.
func (h *RefreshStatusesHandler) Handle(ctx context.Context) (*RefreshStatusesResult, error) {
	subscriptions, err := h.subscRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := sharedDomain.Today(h.clock)
	result := &RefreshStatusesResult{Evaluated: len(subscriptions)}

	for _, subscription := range subscriptions {
		if !subscription.Reevaluate(today) {
			continue
		}

		if err := h.commit(ctx, subscription); err != nil {
			result.Failed++
			h.logger.ErrorContext(ctx, "lifecycle sweep failed for subscription",
				slog.String("subscription_id", subscription.ID().String()),
				slog.String("error", err.Error()))
			continue
		}
		result.Transitioned++
	}

	h.logger.InfoContext(ctx, "lifecycle sweep complete",
		slog.Int("evaluated", result.Evaluated),
		slog.Int("transitioned", result.Transitioned),
		slog.Int("failed", result.Failed))

	return result, nil
}

func (h *RefreshStatusesHandler) commit(ctx context.Context, subscription *domain.Subscription) error {
	defer subscription.ClearDomainEvents()

	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		if err := h.subscRepo.Save(txCtx, subscription); err != nil {
			return err
		}

		events := subscription.DomainEvents()
		sharedApplication.ApplyEventMetadata(events, sharedApplication.NewEventMetadata(uuid.Nil))

		msgs, err := outbox.FromEvents(events)
		if err != nil {
			return err
		}
		return h.outboxRepo.SaveBatch(txCtx, msgs)
	})
}
