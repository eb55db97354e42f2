package domain

import (
	"context"

	"github.com/google/uuid"
)

// PlanRepository defines access for plan persistence.
type PlanRepository interface {
	Save(ctx context.Context, plan *Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*Plan, error)
	FindAll(ctx context.Context) ([]*Plan, error)
}

// SubscriptionRepository defines access for subscription persistence.
type SubscriptionRepository interface {
	Save(ctx context.Context, subscription *Subscription) error
	FindByID(ctx context.Context, id uuid.UUID) (*Subscription, error)
	FindAll(ctx context.Context) ([]*Subscription, error)
}

// PaymentRepository defines access for payment persistence.
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	// FindLatestSettled returns the most recently settled payments,
	// newest first, bounded by limit.
	FindLatestSettled(ctx context.Context, limit int) ([]*Payment, error)
}

// InvoiceRepository defines access for invoice persistence.
type InvoiceRepository interface {
	Save(ctx context.Context, invoice *Invoice) error
	// HasOverdue reports whether the subscription has any OVERDUE invoice.
	HasOverdue(ctx context.Context, subscriptionID uuid.UUID) (bool, error)
}
