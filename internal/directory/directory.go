// Package directory exposes the identity lookups the scheduling and billing
// flows need from the wider system. Entity management itself lives elsewhere.
package directory

import (
	"context"

	"github.com/google/uuid"
)

// Directory answers existence checks for users and clubs.
type Directory interface {
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	ClubExists(ctx context.Context, id uuid.UUID) (bool, error)
}
