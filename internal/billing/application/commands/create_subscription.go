package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedApplication "github.com/sportsms/courtside/internal/shared/application"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/outbox"
)

// CreateSubscriptionCommand contains the data needed to open a subscription.
type CreateSubscriptionCommand struct {
	SubscriberType string
	SubscriberID   uuid.UUID
	PlanID         uuid.UUID
	AutoRenew      bool
}

// CreateSubscriptionResult contains the result of opening a subscription.
type CreateSubscriptionResult struct {
	SubscriptionID uuid.UUID
	InvoiceID      uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	GraceEndDate   time.Time
}

// CreateSubscriptionHandler handles the CreateSubscriptionCommand.
type CreateSubscriptionHandler struct {
	planRepo    domain.PlanRepository
	subscRepo   domain.SubscriptionRepository
	invoiceRepo domain.InvoiceRepository
	outboxRepo  outbox.Repository
	uow         sharedApplication.UnitOfWork
	clock       sharedDomain.Clock
}

// NewCreateSubscriptionHandler creates a new CreateSubscriptionHandler.
func NewCreateSubscriptionHandler(
	planRepo domain.PlanRepository,
	subscRepo domain.SubscriptionRepository,
	invoiceRepo domain.InvoiceRepository,
	outboxRepo outbox.Repository,
	uow sharedApplication.UnitOfWork,
	clock sharedDomain.Clock,
) *CreateSubscriptionHandler {
	return &CreateSubscriptionHandler{
		planRepo:    planRepo,
		subscRepo:   subscRepo,
		invoiceRepo: invoiceRepo,
		outboxRepo:  outboxRepo,
		uow:         uow,
		clock:       clock,
	}
}

// Handle executes the CreateSubscriptionCommand. The subscription and its
// invoice are persisted in one transaction; the invoice is generated exactly
// once, synchronously with creation.
func (h *CreateSubscriptionHandler) Handle(ctx context.Context, cmd CreateSubscriptionCommand) (*CreateSubscriptionResult, error) {
	plan, err := h.planRepo.FindByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	subscription, err := domain.NewSubscription(
		domain.SubscriberType(cmd.SubscriberType),
		cmd.SubscriberID,
		plan,
		cmd.AutoRenew,
		now,
	)
	if err != nil {
		return nil, err
	}

	invoice := domain.NewInvoice(subscription, plan, now)

	var result *CreateSubscriptionResult
	err = sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		if err := h.subscRepo.Save(txCtx, subscription); err != nil {
			return err
		}
		if err := h.invoiceRepo.Save(txCtx, invoice); err != nil {
			return err
		}

		events := subscription.DomainEvents()
		events = append(events, domain.NewInvoiceIssued(invoice))
		sharedApplication.ApplyEventMetadata(events, sharedApplication.NewEventMetadata(cmd.SubscriberID))

		msgs, err := outbox.FromEvents(events)
		if err != nil {
			return err
		}
		if err := h.outboxRepo.SaveBatch(txCtx, msgs); err != nil {
			return err
		}

		result = &CreateSubscriptionResult{
			SubscriptionID: subscription.ID(),
			InvoiceID:      invoice.ID(),
			StartDate:      subscription.StartDate(),
			EndDate:        subscription.EndDate(),
			GraceEndDate:   subscription.GraceEndDate(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	subscription.ClearDomainEvents()
	return result, nil
}
