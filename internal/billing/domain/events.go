package domain

import (
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

const (
	AggregateType = "Subscription"

	RoutingKeySubscriptionCreated       = "billing.subscription.created"
	RoutingKeySubscriptionStatusChanged = "billing.subscription.status_changed"
	RoutingKeyInvoiceIssued             = "billing.invoice.issued"
	RoutingKeyPaymentVerified           = "billing.payment.verified"
)

// SubscriptionCreated is emitted when a new subscription is opened.
type SubscriptionCreated struct {
	sharedDomain.BaseEvent
	SubscriberType string    `json:"subscriber_type"`
	SubscriberID   uuid.UUID `json:"subscriber_id"`
	PlanID         uuid.UUID `json:"plan_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	GraceEndDate   time.Time `json:"grace_end_date"`
	AutoRenew      bool      `json:"auto_renew"`
}

// NewSubscriptionCreated creates a SubscriptionCreated event.
func NewSubscriptionCreated(s *Subscription) *SubscriptionCreated {
	return &SubscriptionCreated{
		BaseEvent:      sharedDomain.NewBaseEvent(s.ID(), AggregateType, RoutingKeySubscriptionCreated),
		SubscriberType: string(s.SubscriberType()),
		SubscriberID:   s.SubscriberID(),
		PlanID:         s.PlanID(),
		StartDate:      s.StartDate(),
		EndDate:        s.EndDate(),
		GraceEndDate:   s.GraceEndDate(),
		AutoRenew:      s.AutoRenew(),
	}
}

// SubscriptionStatusChanged is emitted on every lifecycle transition.
type SubscriptionStatusChanged struct {
	sharedDomain.BaseEvent
	From string `json:"from"`
	To   string `json:"to"`
}

// NewSubscriptionStatusChanged creates a SubscriptionStatusChanged event.
func NewSubscriptionStatusChanged(s *Subscription, from SubscriptionStatus) *SubscriptionStatusChanged {
	return &SubscriptionStatusChanged{
		BaseEvent: sharedDomain.NewBaseEvent(s.ID(), AggregateType, RoutingKeySubscriptionStatusChanged),
		From:      string(from),
		To:        string(s.Status()),
	}
}

// InvoiceIssued is emitted when the subscription's invoice is generated.
type InvoiceIssued struct {
	sharedDomain.BaseEvent
	InvoiceID     uuid.UUID `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`
	IssueDate     time.Time `json:"issue_date"`
	DueDate       time.Time `json:"due_date"`
	TotalCents    int64     `json:"total_cents"`
}

// NewInvoiceIssued creates an InvoiceIssued event.
func NewInvoiceIssued(invoice *Invoice) *InvoiceIssued {
	return &InvoiceIssued{
		BaseEvent:     sharedDomain.NewBaseEvent(invoice.SubscriptionID, AggregateType, RoutingKeyInvoiceIssued),
		InvoiceID:     invoice.ID(),
		InvoiceNumber: invoice.InvoiceNumber,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		TotalCents:    invoice.TotalCents,
	}
}

// PaymentVerified is emitted when a gateway verification settles.
type PaymentVerified struct {
	sharedDomain.BaseEvent
	PaymentID uuid.UUID `json:"payment_id"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
}

// NewPaymentVerified creates a PaymentVerified event.
func NewPaymentVerified(payment *Payment, message string) *PaymentVerified {
	return &PaymentVerified{
		BaseEvent: sharedDomain.NewBaseEvent(payment.SubscriptionID, AggregateType, RoutingKeyPaymentVerified),
		PaymentID: payment.ID(),
		Provider:  string(payment.Provider),
		Status:    string(payment.Status),
		Message:   message,
	}
}
