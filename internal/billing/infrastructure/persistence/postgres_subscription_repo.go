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

// PostgresSubscriptionRepository implements domain.SubscriptionRepository
// using PostgreSQL.
type PostgresSubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubscriptionRepository creates a new PostgreSQL subscription repository.
func NewPostgresSubscriptionRepository(pool *pgxpool.Pool) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{pool: pool}
}

// subscriptionRow represents a database row for subscriptions.
type subscriptionRow struct {
	ID             uuid.UUID
	SubscriberType string
	SubscriberID   uuid.UUID
	PlanID         uuid.UUID
	Status         string
	StartDate      time.Time
	EndDate        time.Time
	GraceEndDate   time.Time
	AutoRenew      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (row subscriptionRow) toDomain() *domain.Subscription {
	return domain.RehydrateSubscription(
		sharedDomain.RehydrateBaseEntity(row.ID, row.CreatedAt, row.UpdatedAt),
		domain.SubscriberType(row.SubscriberType),
		row.SubscriberID,
		row.PlanID,
		domain.SubscriptionStatus(row.Status),
		sharedDomain.DateOf(row.StartDate),
		sharedDomain.DateOf(row.EndDate),
		sharedDomain.DateOf(row.GraceEndDate),
		row.AutoRenew,
	)
}

// Save persists a subscription, inserting or updating as needed.
func (r *PostgresSubscriptionRepository) Save(ctx context.Context, subscription *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id, subscriber_type, subscriber_id, plan_id, status,
			start_date, end_date, grace_end_date, auto_renew, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			auto_renew = EXCLUDED.auto_renew,
			updated_at = EXCLUDED.updated_at
	`

	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query,
		subscription.ID(),
		string(subscription.SubscriberType()),
		subscription.SubscriberID(),
		subscription.PlanID(),
		string(subscription.Status()),
		subscription.StartDate(),
		subscription.EndDate(),
		subscription.GraceEndDate(),
		subscription.AutoRenew(),
		subscription.CreatedAt(),
		subscription.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a subscription by its ID.
func (r *PostgresSubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	query := `
		SELECT id, subscriber_type, subscriber_id, plan_id, status,
		       start_date, end_date, grace_end_date, auto_renew, created_at, updated_at
		FROM subscriptions
		WHERE id = $1
	`

	var row subscriptionRow
	err := sharedPersistence.Executor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&row.ID, &row.SubscriberType, &row.SubscriberID, &row.PlanID, &row.Status,
		&row.StartDate, &row.EndDate, &row.GraceEndDate, &row.AutoRenew,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, sharedDomain.NotFoundError("subscription not found")
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// FindAll retrieves every subscription ordered by creation time.
func (r *PostgresSubscriptionRepository) FindAll(ctx context.Context) ([]*domain.Subscription, error) {
	query := `
		SELECT id, subscriber_type, subscriber_id, plan_id, status,
		       start_date, end_date, grace_end_date, auto_renew, created_at, updated_at
		FROM subscriptions
		ORDER BY created_at
	`

	rows, err := sharedPersistence.Executor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscriptions []*domain.Subscription
	for rows.Next() {
		var row subscriptionRow
		if err := rows.Scan(
			&row.ID, &row.SubscriberType, &row.SubscriberID, &row.PlanID, &row.Status,
			&row.StartDate, &row.EndDate, &row.GraceEndDate, &row.AutoRenew,
			&row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, row.toDomain())
	}
	return subscriptions, rows.Err()
}
