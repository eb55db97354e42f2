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

// PostgresPlanRepository implements domain.PlanRepository using PostgreSQL.
type PostgresPlanRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPlanRepository creates a new PostgreSQL plan repository.
func NewPostgresPlanRepository(pool *pgxpool.Pool) *PostgresPlanRepository {
	return &PostgresPlanRepository{pool: pool}
}

// planRow represents a database row for subscription plans.
type planRow struct {
	ID             uuid.UUID
	Name           string
	SubscriberType string
	AmountCents    int64
	Currency       string
	BillingPeriod  string
	GraceDays      int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (row planRow) toDomain() *domain.Plan {
	return &domain.Plan{
		BaseEntity:     sharedDomain.RehydrateBaseEntity(row.ID, row.CreatedAt, row.UpdatedAt),
		Name:           row.Name,
		SubscriberType: domain.SubscriberType(row.SubscriberType),
		AmountCents:    row.AmountCents,
		Currency:       row.Currency,
		BillingPeriod:  domain.BillingPeriod(row.BillingPeriod),
		GraceDays:      row.GraceDays,
		Active:         row.Active,
	}
}

// Save persists a plan, inserting or updating as needed.
func (r *PostgresPlanRepository) Save(ctx context.Context, plan *domain.Plan) error {
	query := `
		INSERT INTO subscription_plans (
			id, name, subscriber_type, amount_cents, currency,
			billing_period, grace_days, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			subscriber_type = EXCLUDED.subscriber_type,
			amount_cents = EXCLUDED.amount_cents,
			currency = EXCLUDED.currency,
			billing_period = EXCLUDED.billing_period,
			grace_days = EXCLUDED.grace_days,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at
	`

	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query,
		plan.ID(),
		plan.Name,
		string(plan.SubscriberType),
		plan.AmountCents,
		plan.Currency,
		string(plan.BillingPeriod),
		plan.GraceDays,
		plan.Active,
		plan.CreatedAt(),
		plan.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a plan by its ID.
func (r *PostgresPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	query := `
		SELECT id, name, subscriber_type, amount_cents, currency,
		       billing_period, grace_days, active, created_at, updated_at
		FROM subscription_plans
		WHERE id = $1
	`

	var row planRow
	err := sharedPersistence.Executor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Name, &row.SubscriberType, &row.AmountCents, &row.Currency,
		&row.BillingPeriod, &row.GraceDays, &row.Active, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, sharedDomain.NotFoundError("plan not found")
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// FindAll retrieves every plan ordered by name.
func (r *PostgresPlanRepository) FindAll(ctx context.Context) ([]*domain.Plan, error) {
	query := `
		SELECT id, name, subscriber_type, amount_cents, currency,
		       billing_period, grace_days, active, created_at, updated_at
		FROM subscription_plans
		ORDER BY name
	`

	rows, err := sharedPersistence.Executor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		var row planRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.SubscriberType, &row.AmountCents, &row.Currency,
			&row.BillingPeriod, &row.GraceDays, &row.Active, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, row.toDomain())
	}
	return plans, rows.Err()
}
