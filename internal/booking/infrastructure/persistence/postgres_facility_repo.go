package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsms/courtside/internal/booking/domain"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/database"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// PostgresFacilityRepository implements domain.FacilityRepository using PostgreSQL.
type PostgresFacilityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFacilityRepository creates a new PostgreSQL facility repository.
func NewPostgresFacilityRepository(pool *pgxpool.Pool) *PostgresFacilityRepository {
	return &PostgresFacilityRepository{pool: pool}
}

// facilityRow represents a database row for facilities.
type facilityRow struct {
	ID                uuid.UUID
	Name              string
	Location          string
	Capacity          *int
	PricePerHourCents int64
	Status            string
	OwnerClubID       *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (row facilityRow) toDomain() *domain.Facility {
	return &domain.Facility{
		BaseEntity:        sharedDomain.RehydrateBaseEntity(row.ID, row.CreatedAt, row.UpdatedAt),
		Name:              row.Name,
		Location:          row.Location,
		Capacity:          row.Capacity,
		PricePerHourCents: row.PricePerHourCents,
		Status:            domain.FacilityStatus(row.Status),
		OwnerClubID:       row.OwnerClubID,
	}
}

// Save persists a facility, inserting or updating as needed.
func (r *PostgresFacilityRepository) Save(ctx context.Context, facility *domain.Facility) error {
	query := `
		INSERT INTO facilities (
			id, name, location, capacity, price_per_hour_cents,
			status, owner_club_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			capacity = EXCLUDED.capacity,
			price_per_hour_cents = EXCLUDED.price_per_hour_cents,
			status = EXCLUDED.status,
			owner_club_id = EXCLUDED.owner_club_id,
			updated_at = EXCLUDED.updated_at
	`

	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query,
		facility.ID(),
		facility.Name,
		facility.Location,
		facility.Capacity,
		facility.PricePerHourCents,
		string(facility.Status),
		facility.OwnerClubID,
		facility.CreatedAt(),
		facility.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a facility by its ID.
func (r *PostgresFacilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	return r.find(ctx, id, false)
}

// FindByIDForUpdate retrieves a facility and locks its row for the ambient
// transaction. Booking and maintenance conflict checks run under this lock.
func (r *PostgresFacilityRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	return r.find(ctx, id, true)
}

func (r *PostgresFacilityRepository) find(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Facility, error) {
	query := `
		SELECT id, name, location, capacity, price_per_hour_cents,
		       status, owner_club_id, created_at, updated_at
		FROM facilities
		WHERE id = $1
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var row facilityRow
	err := sharedPersistence.Executor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Name, &row.Location, &row.Capacity, &row.PricePerHourCents,
		&row.Status, &row.OwnerClubID, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, sharedDomain.NotFoundError("facility not found")
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// FindAll retrieves every facility ordered by name.
func (r *PostgresFacilityRepository) FindAll(ctx context.Context) ([]*domain.Facility, error) {
	query := `
		SELECT id, name, location, capacity, price_per_hour_cents,
		       status, owner_club_id, created_at, updated_at
		FROM facilities
		ORDER BY name
	`

	rows, err := sharedPersistence.Executor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facilities []*domain.Facility
	for rows.Next() {
		var row facilityRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Location, &row.Capacity, &row.PricePerHourCents,
			&row.Status, &row.OwnerClubID, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		facilities = append(facilities, row.toDomain())
	}
	return facilities, rows.Err()
}
