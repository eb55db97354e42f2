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

// SQLiteSubscriptionRepository implements domain.SubscriptionRepository using SQLite.
type SQLiteSubscriptionRepository struct {
	db *sql.DB
}

// NewSQLiteSubscriptionRepository creates a new SQLite subscription repository.
func NewSQLiteSubscriptionRepository(db *sql.DB) *SQLiteSubscriptionRepository {
	return &SQLiteSubscriptionRepository{db: db}
}

// Save persists a subscription, inserting or updating as needed.
func (r *SQLiteSubscriptionRepository) Save(ctx context.Context, subscription *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id, subscriber_type, subscriber_id, plan_id, status,
			start_date, end_date, grace_end_date, auto_renew, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			auto_renew = excluded.auto_renew,
			updated_at = excluded.updated_at
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	_, err := db.ExecContext(ctx, query,
		subscription.ID().String(),
		string(subscription.SubscriberType()),
		subscription.SubscriberID().String(),
		subscription.PlanID().String(),
		string(subscription.Status()),
		formatDate(subscription.StartDate()),
		formatDate(subscription.EndDate()),
		formatDate(subscription.GraceEndDate()),
		subscription.AutoRenew(),
		formatTime(subscription.CreatedAt()),
		formatTime(subscription.UpdatedAt()),
	)
	return err
}

// FindByID retrieves a subscription by its ID.
func (r *SQLiteSubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	query := `
		SELECT id, subscriber_type, subscriber_id, plan_id, status,
		       start_date, end_date, grace_end_date, auto_renew, created_at, updated_at
		FROM subscriptions
		WHERE id = ?
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	subscription, err := scanSubscription(db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, sharedDomain.NotFoundError("subscription not found")
		}
		return nil, err
	}
	return subscription, nil
}

// FindAll retrieves every subscription ordered by creation time.
func (r *SQLiteSubscriptionRepository) FindAll(ctx context.Context) ([]*domain.Subscription, error) {
	query := `
		SELECT id, subscriber_type, subscriber_id, plan_id, status,
		       start_date, end_date, grace_end_date, auto_renew, created_at, updated_at
		FROM subscriptions
		ORDER BY created_at
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscriptions []*domain.Subscription
	for rows.Next() {
		subscription, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, subscription)
	}
	return subscriptions, rows.Err()
}

func scanSubscription(row rowScanner) (*domain.Subscription, error) {
	var (
		id, subscriberType, subscriberID, planID, status string
		startDate, endDate, graceEndDate                 string
		autoRenew                                        bool
		createdAt, updatedAt                             string
	)
	if err := row.Scan(
		&id, &subscriberType, &subscriberID, &planID, &status,
		&startDate, &endDate, &graceEndDate, &autoRenew, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	subID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	subscriber, err := uuid.Parse(subscriberID)
	if err != nil {
		return nil, err
	}
	plan, err := uuid.Parse(planID)
	if err != nil {
		return nil, err
	}
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}
	graceEnd, err := parseDate(graceEndDate)
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

	return domain.RehydrateSubscription(
		sharedDomain.RehydrateBaseEntity(subID, created, updated),
		domain.SubscriberType(subscriberType),
		subscriber,
		plan,
		domain.SubscriptionStatus(status),
		start, end, graceEnd,
		autoRenew,
	), nil
}
