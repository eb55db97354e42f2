package persistence

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// SQLiteInvoiceRepository implements domain.InvoiceRepository using SQLite.
type SQLiteInvoiceRepository struct {
	db *sql.DB
}

// NewSQLiteInvoiceRepository creates a new SQLite invoice repository.
func NewSQLiteInvoiceRepository(db *sql.DB) *SQLiteInvoiceRepository {
	return &SQLiteInvoiceRepository{db: db}
}

// Save persists an invoice, inserting or updating as needed.
func (r *SQLiteInvoiceRepository) Save(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		INSERT INTO invoices (
			id, subscription_id, invoice_number, issue_date, due_date,
			total_cents, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			updated_at = excluded.updated_at
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	_, err := db.ExecContext(ctx, query,
		invoice.ID().String(),
		invoice.SubscriptionID.String(),
		invoice.InvoiceNumber,
		formatDate(invoice.IssueDate),
		formatDate(invoice.DueDate),
		invoice.TotalCents,
		string(invoice.Status),
		formatTime(invoice.CreatedAt()),
		formatTime(invoice.UpdatedAt()),
	)
	return err
}

// HasOverdue reports whether the subscription has any OVERDUE invoice.
func (r *SQLiteInvoiceRepository) HasOverdue(ctx context.Context, subscriptionID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM invoices
			WHERE subscription_id = ? AND status = ?
		)
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	var exists bool
	err := db.QueryRowContext(ctx, query, subscriptionID.String(), string(domain.InvoiceOverdue)).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
