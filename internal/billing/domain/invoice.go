package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

// InvoiceStatus is the reconciliation state of an invoice.
type InvoiceStatus string

const (
	InvoiceOpen    InvoiceStatus = "OPEN"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// invoiceDueDays is how long after issue an invoice falls due.
const invoiceDueDays = 7

// Invoice is generated exactly once per subscription creation. Status
// transitions after that are driven by external payment reconciliation.
type Invoice struct {
	sharedDomain.BaseEntity
	SubscriptionID uuid.UUID
	InvoiceNumber  string
	IssueDate      time.Time
	DueDate        time.Time
	TotalCents     int64
	Status         InvoiceStatus
}

// NewInvoice derives an OPEN invoice from a newly created subscription.
func NewInvoice(subscription *Subscription, plan *Plan, now time.Time) *Invoice {
	today := sharedDomain.DateOf(now)
	return &Invoice{
		BaseEntity:     sharedDomain.NewBaseEntity(),
		SubscriptionID: subscription.ID(),
		InvoiceNumber:  fmt.Sprintf("INV-%d", now.UnixMilli()),
		IssueDate:      today,
		DueDate:        today.AddDate(0, 0, invoiceDueDays),
		TotalCents:     plan.AmountCents,
		Status:         InvoiceOpen,
	}
}
