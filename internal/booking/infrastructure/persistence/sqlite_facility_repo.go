package persistence

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/booking/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/database"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// SQLiteFacilityRepository implements domain.FacilityRepository using SQLite.
type SQLiteFacilityRepository struct {
	db *sql.DB
}

// NewSQLiteFacilityRepository creates a new SQLite facility repository.
func NewSQLiteFacilityRepository(db *sql.DB) *SQLiteFacilityRepository {
	return &SQLiteFacilityRepository{db: db}
}

// Save persists a facility, inserting or updating as needed.
func (r *SQLiteFacilityRepository) Save(ctx context.Context, facility *domain.Facility) error {
	query := `
		INSERT INTO facilities (
			id, name, location, capacity, price_per_hour_cents,
			status, owner_club_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			location = excluded.location,
			capacity = excluded.capacity,
			price_per_hour_cents = excluded.price_per_hour_cents,
			status = excluded.status,
			owner_club_id = excluded.owner_club_id,
			updated_at = excluded.updated_at
	`

	var ownerClubID any
	if facility.OwnerClubID != nil {
		ownerClubID = facility.OwnerClubID.String()
	}

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	_, err := db.ExecContext(ctx, query,
		facility.ID().String(),
		facility.Name,
		facility.Location,
		facility.Capacity,
		facility.PricePerHourCents,
		string(facility.Status),
		ownerClubID,
		formatTime(facility.CreatedAt()),
		formatTime(facility.UpdatedAt()),
	)
	return err
}

// FindByID retrieves a facility by its ID.
func (r *SQLiteFacilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	query := `
		SELECT id, name, location, capacity, price_per_hour_cents,
		       status, owner_club_id, created_at, updated_at
		FROM facilities
		WHERE id = ?
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	facility, err := scanFacility(db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, sharedDomain.NotFoundError("facility not found")
		}
		return nil, err
	}
	return facility, nil
}

// FindByIDForUpdate retrieves a facility. SQLite runs a single writer, so
// the plain lookup already serializes conflicting transactions.
func (r *SQLiteFacilityRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	return r.FindByID(ctx, id)
}

// FindAll retrieves every facility ordered by name.
func (r *SQLiteFacilityRepository) FindAll(ctx context.Context) ([]*domain.Facility, error) {
	query := `
		SELECT id, name, location, capacity, price_per_hour_cents,
		       status, owner_club_id, created_at, updated_at
		FROM facilities
		ORDER BY name
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facilities []*domain.Facility
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, facility)
	}
	return facilities, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFacility(row rowScanner) (*domain.Facility, error) {
	var (
		id, status           string
		capacity             sql.NullInt64
		ownerClubID          sql.NullString
		createdAt, updatedAt string
		facility             domain.Facility
	)
	if err := row.Scan(
		&id, &facility.Name, &facility.Location, &capacity, &facility.PricePerHourCents,
		&status, &ownerClubID, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	facilityID, err := uuid.Parse(id)
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
	if capacity.Valid {
		c := int(capacity.Int64)
		facility.Capacity = &c
	}
	if ownerClubID.Valid {
		clubID, err := uuid.Parse(ownerClubID.String)
		if err != nil {
			return nil, err
		}
		facility.OwnerClubID = &clubID
	}

	facility.BaseEntity = sharedDomain.RehydrateBaseEntity(facilityID, created, updated)
	facility.Status = domain.FacilityStatus(status)
	return &facility, nil
}
