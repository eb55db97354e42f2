package persistence

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/database"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// SQLitePaymentRepository implements domain.PaymentRepository using SQLite.
type SQLitePaymentRepository struct {
	db *sql.DB
}

// NewSQLitePaymentRepository creates a new SQLite payment repository.
func NewSQLitePaymentRepository(db *sql.DB) *SQLitePaymentRepository {
	return &SQLitePaymentRepository{db: db}
}

// Save persists a payment, inserting or updating as needed.
func (r *SQLitePaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id, subscription_id, provider, amount_cents, currency,
			reference, status, paid_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			paid_at = excluded.paid_at,
			updated_at = excluded.updated_at
	`

	var paidAt any
	if payment.PaidAt != nil {
		paidAt = formatTime(*payment.PaidAt)
	}

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	_, err := db.ExecContext(ctx, query,
		payment.ID().String(),
		payment.SubscriptionID.String(),
		string(payment.Provider),
		payment.AmountCents,
		payment.Currency,
		payment.Reference,
		string(payment.Status),
		paidAt,
		formatTime(payment.CreatedAt()),
		formatTime(payment.UpdatedAt()),
	)
	return err
}

// FindByID retrieves a payment by its ID.
func (r *SQLitePaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `
		SELECT id, subscription_id, provider, amount_cents, currency,
		       reference, status, paid_at, created_at, updated_at
		FROM payments
		WHERE id = ?
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	payment, err := scanPayment(db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, sharedDomain.NotFoundError("payment not found")
		}
		return nil, err
	}
	return payment, nil
}

// FindLatestSettled retrieves the most recently settled payments, newest first.
func (r *SQLitePaymentRepository) FindLatestSettled(ctx context.Context, limit int) ([]*domain.Payment, error) {
	query := `
		SELECT id, subscription_id, provider, amount_cents, currency,
		       reference, status, paid_at, created_at, updated_at
		FROM payments
		WHERE status = ?
		ORDER BY paid_at DESC
		LIMIT ?
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	rows, err := db.QueryContext(ctx, query, string(domain.PaymentPaid), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var (
		id, subscriptionID, provider, status string
		paidAt                               sql.NullString
		createdAt, updatedAt                 string
		payment                              domain.Payment
	)
	if err := row.Scan(
		&id, &subscriptionID, &provider, &payment.AmountCents, &payment.Currency,
		&payment.Reference, &status, &paidAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	subID, err := uuid.Parse(subscriptionID)
	if err != nil {
		return nil, err
	}
	created, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	if paidAt.Valid {
		t, err := parseTime(paidAt.String)
		if err != nil {
			return nil, err
		}
		payment.PaidAt = &t
	}

	payment.BaseEntity = sharedDomain.RehydrateBaseEntity(paymentID, created, updated)
	payment.SubscriptionID = subID
	payment.Provider = domain.PaymentProvider(provider)
	payment.Status = domain.PaymentStatus(status)
	return &payment, nil
}
