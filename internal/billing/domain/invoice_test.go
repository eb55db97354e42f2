package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	plan, err := NewPlan("Club Gold", SubscriberClub, 49900, "EUR", BillingMonthly, 5, true)
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 16, 45, 0, 0, time.UTC)
	s, err := NewSubscription(SubscriberClub, uuid.New(), plan, false, now)
	require.NoError(t, err)

	invoice := NewInvoice(s, plan, now)

	assert.NotEqual(t, uuid.Nil, invoice.ID())
	assert.Equal(t, s.ID(), invoice.SubscriptionID)
	assert.Equal(t, fmt.Sprintf("INV-%d", now.UnixMilli()), invoice.InvoiceNumber)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), invoice.IssueDate)
	assert.Equal(t, time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), invoice.DueDate)
	assert.Equal(t, int64(49900), invoice.TotalCents)
	assert.Equal(t, InvoiceOpen, invoice.Status)
}
