package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
)

const (
	planKeyPrefix  = "courtside:plan:"
	planCatalogKey = "courtside:plans"
	planTTL        = 15 * time.Minute
)

// cachedPlan is the Redis serialization of a plan.
type cachedPlan struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	SubscriberType string    `json:"subscriber_type"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	BillingPeriod  string    `json:"billing_period"`
	GraceDays      int       `json:"grace_days"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toCached(plan *domain.Plan) cachedPlan {
	return cachedPlan{
		ID:             plan.ID(),
		Name:           plan.Name,
		SubscriberType: string(plan.SubscriberType),
		AmountCents:    plan.AmountCents,
		Currency:       plan.Currency,
		BillingPeriod:  string(plan.BillingPeriod),
		GraceDays:      plan.GraceDays,
		Active:         plan.Active,
		CreatedAt:      plan.CreatedAt(),
		UpdatedAt:      plan.UpdatedAt(),
	}
}

func (c cachedPlan) toDomain() *domain.Plan {
	return &domain.Plan{
		BaseEntity:     sharedDomain.RehydrateBaseEntity(c.ID, c.CreatedAt, c.UpdatedAt),
		Name:           c.Name,
		SubscriberType: domain.SubscriberType(c.SubscriberType),
		AmountCents:    c.AmountCents,
		Currency:       c.Currency,
		BillingPeriod:  domain.BillingPeriod(c.BillingPeriod),
		GraceDays:      c.GraceDays,
		Active:         c.Active,
	}
}

// PlanCache decorates a PlanRepository with a Redis read-through cache.
// Plans are static reference data, so a short TTL plus invalidation on Save
// keeps the cache honest. Cache failures degrade to the underlying
// repository, never to an error.
type PlanCache struct {
	inner  domain.PlanRepository
	client *redis.Client
	logger *slog.Logger
}

// NewPlanCache creates a new PlanCache around inner.
func NewPlanCache(inner domain.PlanRepository, client *redis.Client, logger *slog.Logger) *PlanCache {
	return &PlanCache{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

// Save writes through to the repository and invalidates cached entries.
func (c *PlanCache) Save(ctx context.Context, plan *domain.Plan) error {
	if err := c.inner.Save(ctx, plan); err != nil {
		return err
	}

	if err := c.client.Del(ctx, planKeyPrefix+plan.ID().String(), planCatalogKey).Err(); err != nil {
		c.logger.WarnContext(ctx, "plan cache invalidation failed",
			slog.String("plan_id", plan.ID().String()),
			slog.String("error", err.Error()))
	}
	return nil
}

// FindByID serves from cache when possible.
func (c *PlanCache) FindByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	key := planKeyPrefix + id.String()

	if val, err := c.client.Get(ctx, key).Result(); err == nil {
		var cached cachedPlan
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached.toDomain(), nil
		}
	} else if err != redis.Nil {
		c.logger.WarnContext(ctx, "plan cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	plan, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, toCached(plan))
	return plan, nil
}

// FindAll serves the whole catalog from cache when possible.
func (c *PlanCache) FindAll(ctx context.Context) ([]*domain.Plan, error) {
	if val, err := c.client.Get(ctx, planCatalogKey).Result(); err == nil {
		var cached []cachedPlan
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			plans := make([]*domain.Plan, 0, len(cached))
			for _, p := range cached {
				plans = append(plans, p.toDomain())
			}
			return plans, nil
		}
	} else if err != redis.Nil {
		c.logger.WarnContext(ctx, "plan cache read failed",
			slog.String("key", planCatalogKey),
			slog.String("error", err.Error()))
	}

	plans, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	cached := make([]cachedPlan, 0, len(plans))
	for _, p := range plans {
		cached = append(cached, toCached(p))
	}
	c.set(ctx, planCatalogKey, cached)
	return plans, nil
}

func (c *PlanCache) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, planTTL).Err(); err != nil {
		c.logger.WarnContext(ctx, "plan cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
