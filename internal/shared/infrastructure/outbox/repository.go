package outbox

import (
	"context"
	"time"
)

// Repository persists outbox messages alongside the writes that produce them.
type Repository interface {
	// Save stores a single outbox message.
	Save(ctx context.Context, msg *Message) error

	// SaveBatch stores several outbox messages in one statement.
	SaveBatch(ctx context.Context, msgs []*Message) error

	// GetUnpublished returns pending messages in creation order.
	GetUnpublished(ctx context.Context, limit int) ([]*Message, error)

	// MarkPublished records a successful publish.
	MarkPublished(ctx context.Context, id int64) error

	// MarkFailed records a failed publish attempt and schedules the retry.
	MarkFailed(ctx context.Context, id int64, err string, nextRetryAt time.Time) error

	// MarkDead parks a message that exhausted its retries.
	MarkDead(ctx context.Context, id int64, reason string) error

	// DeleteOld prunes published messages past the retention window.
	DeleteOld(ctx context.Context, olderThanDays int) (int64, error)
}
