package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsms/courtside/internal/booking/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/database"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// PostgresBookingRepository implements domain.BookingRepository using PostgreSQL.
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new PostgreSQL booking repository.
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{pool: pool}
}

// bookingRow represents a database row for facility bookings.
type bookingRow struct {
	ID              uuid.UUID
	FacilityID      uuid.UUID
	RequestedBy     uuid.UUID
	ClubID          *uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	Status          string
	PaymentRequired bool
	PaymentID       *uuid.UUID
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (row bookingRow) toDomain() *domain.FacilityBooking {
	return domain.RehydrateFacilityBooking(
		sharedDomain.RehydrateBaseEntity(row.ID, row.CreatedAt, row.UpdatedAt),
		row.FacilityID,
		row.RequestedBy,
		row.ClubID,
		domain.TimeRange{Start: row.StartTime, End: row.EndTime},
		domain.BookingStatus(row.Status),
		row.PaymentRequired,
		row.PaymentID,
		row.Notes,
	)
}

const postgresBookingColumns = `
	id, facility_id, requested_by, club_id, start_time, end_time,
	status, payment_required, payment_id, notes, created_at, updated_at
`

func scanPostgresBooking(row pgx.Row) (*domain.FacilityBooking, error) {
	var b bookingRow
	if err := row.Scan(
		&b.ID, &b.FacilityID, &b.RequestedBy, &b.ClubID, &b.StartTime, &b.EndTime,
		&b.Status, &b.PaymentRequired, &b.PaymentID, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return b.toDomain(), nil
}

// Save persists a booking, inserting or updating as needed.
func (r *PostgresBookingRepository) Save(ctx context.Context, booking *domain.FacilityBooking) error {
	query := `
		INSERT INTO facility_bookings (
			id, facility_id, requested_by, club_id, start_time, end_time,
			status, payment_required, payment_id, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			payment_id = EXCLUDED.payment_id,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at
	`

	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query,
		booking.ID(),
		booking.FacilityID(),
		booking.RequestedBy(),
		booking.ClubID(),
		booking.Window().Start,
		booking.Window().End,
		string(booking.Status()),
		booking.PaymentRequired(),
		booking.PaymentID(),
		booking.Notes(),
		booking.CreatedAt(),
		booking.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a booking by its ID.
func (r *PostgresBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FacilityBooking, error) {
	query := `SELECT ` + postgresBookingColumns + ` FROM facility_bookings WHERE id = $1`

	booking, err := scanPostgresBooking(sharedPersistence.Executor(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, sharedDomain.NotFoundError("booking not found")
		}
		return nil, err
	}
	return booking, nil
}

// FindOverlapping retrieves the facility's non-cancelled bookings whose
// half-open window intersects the given range.
func (r *PostgresBookingRepository) FindOverlapping(ctx context.Context, facilityID uuid.UUID, window domain.TimeRange) ([]*domain.FacilityBooking, error) {
	query := `
		SELECT ` + postgresBookingColumns + `
		FROM facility_bookings
		WHERE facility_id = $1
		  AND status <> $2
		  AND start_time < $3
		  AND end_time > $4
	`

	return r.query(ctx, query, facilityID, string(domain.BookingCancelled), window.End, window.Start)
}

// FindInRange retrieves the facility's bookings starting inside [from, to).
func (r *PostgresBookingRepository) FindInRange(ctx context.Context, facilityID uuid.UUID, from, to time.Time) ([]*domain.FacilityBooking, error) {
	query := `
		SELECT ` + postgresBookingColumns + `
		FROM facility_bookings
		WHERE facility_id = $1
		  AND start_time >= $2
		  AND start_time < $3
		ORDER BY start_time
	`

	return r.query(ctx, query, facilityID, from, to)
}

func (r *PostgresBookingRepository) query(ctx context.Context, query string, args ...any) ([]*domain.FacilityBooking, error) {
	rows, err := sharedPersistence.Executor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.FacilityBooking
	for rows.Next() {
		booking, err := scanPostgresBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
