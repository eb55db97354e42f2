package directory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// PostgresDirectory implements Directory against the shared PostgreSQL store.
type PostgresDirectory struct {
	pool *pgxpool.Pool
}

// NewPostgresDirectory creates a new PostgresDirectory.
func NewPostgresDirectory(pool *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{pool: pool}
}

// UserExists reports whether a user row exists.
func (d *PostgresDirectory) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return d.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
}

// ClubExists reports whether a club row exists.
func (d *PostgresDirectory) ClubExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return d.exists(ctx, `SELECT EXISTS (SELECT 1 FROM clubs WHERE id = $1)`, id)
}

func (d *PostgresDirectory) exists(ctx context.Context, query string, id uuid.UUID) (bool, error) {
	var exists bool
	err := sharedPersistence.Executor(ctx, d.pool).QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
