package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/database"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// PostgresPaymentRepository implements domain.PaymentRepository using PostgreSQL.
type PostgresPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPaymentRepository creates a new PostgreSQL payment repository.
func NewPostgresPaymentRepository(pool *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{pool: pool}
}

// paymentRow represents a database row for payments.
type paymentRow struct {
	ID             uuid.UUID
	SubscriptionID uuid.UUID
	Provider       string
	AmountCents    int64
	Currency       string
	Reference      string
	Status         string
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (row paymentRow) toDomain() *domain.Payment {
	return &domain.Payment{
		BaseEntity:     sharedDomain.RehydrateBaseEntity(row.ID, row.CreatedAt, row.UpdatedAt),
		SubscriptionID: row.SubscriptionID,
		Provider:       domain.PaymentProvider(row.Provider),
		AmountCents:    row.AmountCents,
		Currency:       row.Currency,
		Reference:      row.Reference,
		Status:         domain.PaymentStatus(row.Status),
		PaidAt:         row.PaidAt,
	}
}

// Save persists a payment, inserting or updating as needed.
func (r *PostgresPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id, subscription_id, provider, amount_cents, currency,
			reference, status, paid_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			paid_at = EXCLUDED.paid_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query,
		payment.ID(),
		payment.SubscriptionID,
		string(payment.Provider),
		payment.AmountCents,
		payment.Currency,
		payment.Reference,
		string(payment.Status),
		payment.PaidAt,
		payment.CreatedAt(),
		payment.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a payment by its ID.
func (r *PostgresPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `
		SELECT id, subscription_id, provider, amount_cents, currency,
		       reference, status, paid_at, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var row paymentRow
	err := sharedPersistence.Executor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&row.ID, &row.SubscriptionID, &row.Provider, &row.AmountCents, &row.Currency,
		&row.Reference, &row.Status, &row.PaidAt, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, sharedDomain.NotFoundError("payment not found")
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// FindLatestSettled retrieves the most recently settled payments, newest first.
func (r *PostgresPaymentRepository) FindLatestSettled(ctx context.Context, limit int) ([]*domain.Payment, error) {
	query := `
		SELECT id, subscription_id, provider, amount_cents, currency,
		       reference, status, paid_at, created_at, updated_at
		FROM payments
		WHERE status = $1
		ORDER BY paid_at DESC
		LIMIT $2
	`

	rows, err := sharedPersistence.Executor(ctx, r.pool).Query(ctx, query, string(domain.PaymentPaid), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		var row paymentRow
		if err := rows.Scan(
			&row.ID, &row.SubscriptionID, &row.Provider, &row.AmountCents, &row.Currency,
			&row.Reference, &row.Status, &row.PaidAt, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, row.toDomain())
	}
	return payments, rows.Err()
}
