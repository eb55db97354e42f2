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

// SQLitePlanRepository implements domain.PlanRepository using SQLite.
type SQLitePlanRepository struct {
	db *sql.DB
}

// NewSQLitePlanRepository creates a new SQLite plan repository.
func NewSQLitePlanRepository(db *sql.DB) *SQLitePlanRepository {
	return &SQLitePlanRepository{db: db}
}

// Save persists a plan, inserting or updating as needed.
func (r *SQLitePlanRepository) Save(ctx context.Context, plan *domain.Plan) error {
	query := `
		INSERT INTO subscription_plans (
			id, name, subscriber_type, amount_cents, currency,
			billing_period, grace_days, active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			subscriber_type = excluded.subscriber_type,
			amount_cents = excluded.amount_cents,
			currency = excluded.currency,
			billing_period = excluded.billing_period,
			grace_days = excluded.grace_days,
			active = excluded.active,
			updated_at = excluded.updated_at
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	_, err := db.ExecContext(ctx, query,
		plan.ID().String(),
		plan.Name,
		string(plan.SubscriberType),
		plan.AmountCents,
		plan.Currency,
		string(plan.BillingPeriod),
		plan.GraceDays,
		plan.Active,
		formatTime(plan.CreatedAt()),
		formatTime(plan.UpdatedAt()),
	)
	return err
}

// FindByID retrieves a plan by its ID.
func (r *SQLitePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	query := `
		SELECT id, name, subscriber_type, amount_cents, currency,
		       billing_period, grace_days, active, created_at, updated_at
		FROM subscription_plans
		WHERE id = ?
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	plan, err := scanPlan(db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, sharedDomain.NotFoundError("plan not found")
		}
		return nil, err
	}
	return plan, nil
}

// FindAll retrieves every plan ordered by name.
func (r *SQLitePlanRepository) FindAll(ctx context.Context) ([]*domain.Plan, error) {
	query := `
		SELECT id, name, subscriber_type, amount_cents, currency,
		       billing_period, grace_days, active, created_at, updated_at
		FROM subscription_plans
		ORDER BY name
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*domain.Plan, error) {
	var (
		id, subscriberType, billingPeriod string
		createdAt, updatedAt              string
		plan                              domain.Plan
	)
	if err := row.Scan(
		&id, &plan.Name, &subscriberType, &plan.AmountCents, &plan.Currency,
		&billingPeriod, &plan.GraceDays, &plan.Active, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	planID, err := uuid.Parse(id)
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

	plan.BaseEntity = sharedDomain.RehydrateBaseEntity(planID, created, updated)
	plan.SubscriberType = domain.SubscriberType(subscriberType)
	plan.BillingPeriod = domain.BillingPeriod(billingPeriod)
	return &plan, nil
}
