package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/booking/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/database"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

const sqliteBookingColumns = `
	id, facility_id, requested_by, club_id, start_time, end_time,
	status, payment_required, payment_id, notes, created_at, updated_at
`

// SQLiteBookingRepository implements domain.BookingRepository using SQLite.
type SQLiteBookingRepository struct {
	db *sql.DB
}

// NewSQLiteBookingRepository creates a new SQLite booking repository.
func NewSQLiteBookingRepository(db *sql.DB) *SQLiteBookingRepository {
	return &SQLiteBookingRepository{db: db}
}

// Save persists a booking, inserting or updating as needed.
func (r *SQLiteBookingRepository) Save(ctx context.Context, booking *domain.FacilityBooking) error {
	query := `
		INSERT INTO facility_bookings (
			id, facility_id, requested_by, club_id, start_time, end_time,
			status, payment_required, payment_id, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			payment_id = excluded.payment_id,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`

	var clubID, paymentID any
	if booking.ClubID() != nil {
		clubID = booking.ClubID().String()
	}
	if booking.PaymentID() != nil {
		paymentID = booking.PaymentID().String()
	}

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	_, err := db.ExecContext(ctx, query,
		booking.ID().String(),
		booking.FacilityID().String(),
		booking.RequestedBy().String(),
		clubID,
		formatTime(booking.Window().Start),
		formatTime(booking.Window().End),
		string(booking.Status()),
		booking.PaymentRequired(),
		paymentID,
		booking.Notes(),
		formatTime(booking.CreatedAt()),
		formatTime(booking.UpdatedAt()),
	)
	return err
}

// FindByID retrieves a booking by its ID.
func (r *SQLiteBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FacilityBooking, error) {
	query := `SELECT ` + sqliteBookingColumns + ` FROM facility_bookings WHERE id = ?`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	booking, err := scanBooking(db.QueryRowContext(ctx, query, id.String()))
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
func (r *SQLiteBookingRepository) FindOverlapping(ctx context.Context, facilityID uuid.UUID, window domain.TimeRange) ([]*domain.FacilityBooking, error) {
	query := `
		SELECT ` + sqliteBookingColumns + `
		FROM facility_bookings
		WHERE facility_id = ?
		  AND status <> ?
		  AND start_time < ?
		  AND end_time > ?
	`

	return r.query(ctx, query,
		facilityID.String(), string(domain.BookingCancelled),
		formatTime(window.End), formatTime(window.Start),
	)
}

// FindInRange retrieves the facility's bookings starting inside [from, to).
func (r *SQLiteBookingRepository) FindInRange(ctx context.Context, facilityID uuid.UUID, from, to time.Time) ([]*domain.FacilityBooking, error) {
	query := `
		SELECT ` + sqliteBookingColumns + `
		FROM facility_bookings
		WHERE facility_id = ?
		  AND start_time >= ?
		  AND start_time < ?
		ORDER BY start_time
	`

	return r.query(ctx, query, facilityID.String(), formatTime(from), formatTime(to))
}

func (r *SQLiteBookingRepository) query(ctx context.Context, query string, args ...any) ([]*domain.FacilityBooking, error) {
	db := sharedPersistence.SQLiteDB(ctx, r.db)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.FacilityBooking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func scanBooking(row rowScanner) (*domain.FacilityBooking, error) {
	var (
		id, facilityID, requestedBy, status string
		clubID, paymentID                   sql.NullString
		startTime, endTime                  string
		paymentRequired                     bool
		notes                               string
		createdAt, updatedAt                string
	)
	if err := row.Scan(
		&id, &facilityID, &requestedBy, &clubID, &startTime, &endTime,
		&status, &paymentRequired, &paymentID, &notes, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	facility, err := uuid.Parse(facilityID)
	if err != nil {
		return nil, err
	}
	requester, err := uuid.Parse(requestedBy)
	if err != nil {
		return nil, err
	}
	start, err := parseTime(startTime)
	if err != nil {
		return nil, err
	}
	end, err := parseTime(endTime)
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

	var club, payment *uuid.UUID
	if clubID.Valid {
		parsed, err := uuid.Parse(clubID.String)
		if err != nil {
			return nil, err
		}
		club = &parsed
	}
	if paymentID.Valid {
		parsed, err := uuid.Parse(paymentID.String)
		if err != nil {
			return nil, err
		}
		payment = &parsed
	}

	return domain.RehydrateFacilityBooking(
		sharedDomain.RehydrateBaseEntity(bookingID, created, updated),
		facility,
		requester,
		club,
		domain.TimeRange{Start: start, End: end},
		domain.BookingStatus(status),
		paymentRequired,
		payment,
		notes,
	), nil
}
