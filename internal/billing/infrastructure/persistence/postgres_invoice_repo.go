package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// PostgresInvoiceRepository implements domain.InvoiceRepository using PostgreSQL.
type PostgresInvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository.
func NewPostgresInvoiceRepository(pool *pgxpool.Pool) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{pool: pool}
}

// Save persists an invoice, inserting or updating as needed.
func (r *PostgresInvoiceRepository) Save(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		INSERT INTO invoices (
			id, subscription_id, invoice_number, issue_date, due_date,
			total_cents, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`

	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query,
		invoice.ID(),
		invoice.SubscriptionID,
		invoice.InvoiceNumber,
		invoice.IssueDate,
		invoice.DueDate,
		invoice.TotalCents,
		string(invoice.Status),
		invoice.CreatedAt(),
		invoice.UpdatedAt(),
	)
	return err
}

// HasOverdue reports whether the subscription has any OVERDUE invoice.
func (r *PostgresInvoiceRepository) HasOverdue(ctx context.Context, subscriptionID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM invoices
			WHERE subscription_id = $1 AND status = $2
		)
	`

	var exists bool
	err := sharedPersistence.Executor(ctx, r.pool).QueryRow(ctx, query,
		subscriptionID, string(domain.InvoiceOverdue),
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
