package directory

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// SQLiteDirectory implements Directory against the shared SQLite store.
type SQLiteDirectory struct {
	db *sql.DB
}

// NewSQLiteDirectory creates a new SQLiteDirectory.
func NewSQLiteDirectory(db *sql.DB) *SQLiteDirectory {
	return &SQLiteDirectory{db: db}
}

// UserExists reports whether a user row exists.
func (d *SQLiteDirectory) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return d.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)`, id)
}

// ClubExists reports whether a club row exists.
func (d *SQLiteDirectory) ClubExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return d.exists(ctx, `SELECT EXISTS (SELECT 1 FROM clubs WHERE id = ?)`, id)
}

func (d *SQLiteDirectory) exists(ctx context.Context, query string, id uuid.UUID) (bool, error) {
	db := sharedPersistence.SQLiteDB(ctx, d.db)
	var exists bool
	err := db.QueryRowContext(ctx, query, id.String()).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
