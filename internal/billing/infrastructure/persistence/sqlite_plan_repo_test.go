package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsms/courtside/internal/billing/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/database"
	"github.com/sportsms/courtside/internal/shared/infrastructure/migrations"
)

// setupBillingTestDB creates an in-memory SQLite database with the schema applied.
func setupBillingTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.RunSQLiteMigrations(ctx, db))
	return db
}

func newTestPlan(t *testing.T) *domain.Plan {
	t.Helper()
	plan, err := domain.NewPlan("Club Gold", domain.SubscriberClub, 49900, "EUR", domain.BillingMonthly, 5, true)
	require.NoError(t, err)
	return plan
}

func TestSQLitePlanRepository_SaveAndFindByID(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewSQLitePlanRepository(db)
	ctx := context.Background()

	plan := newTestPlan(t)
	require.NoError(t, repo.Save(ctx, plan))

	found, err := repo.FindByID(ctx, plan.ID())
	require.NoError(t, err)
	assert.Equal(t, plan.ID(), found.ID())
	assert.Equal(t, "Club Gold", found.Name)
	assert.Equal(t, domain.SubscriberClub, found.SubscriberType)
	assert.Equal(t, int64(49900), found.AmountCents)
	assert.Equal(t, "EUR", found.Currency)
	assert.Equal(t, domain.BillingMonthly, found.BillingPeriod)
	assert.Equal(t, 5, found.GraceDays)
	assert.True(t, found.Active)
}

func TestSQLitePlanRepository_Save_Update(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewSQLitePlanRepository(db)
	ctx := context.Background()

	plan := newTestPlan(t)
	require.NoError(t, repo.Save(ctx, plan))

	plan.Active = false
	plan.AmountCents = 59900
	require.NoError(t, repo.Save(ctx, plan))

	found, err := repo.FindByID(ctx, plan.ID())
	require.NoError(t, err)
	assert.False(t, found.Active)
	assert.Equal(t, int64(59900), found.AmountCents)
}

func TestSQLitePlanRepository_FindByID_NotFound(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewSQLitePlanRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, sharedDomain.ErrNotFound)
}

func TestSQLitePlanRepository_FindAll(t *testing.T) {
	db := setupBillingTestDB(t)
	repo := NewSQLitePlanRepository(db)
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	first := newTestPlan(t)
	second, err := domain.NewPlan("Player Basic", domain.SubscriberPlayer, 9900, "EUR", domain.BillingAnnual, 0, true)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
