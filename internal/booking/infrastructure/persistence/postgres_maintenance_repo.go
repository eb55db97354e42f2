package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportsms/courtside/internal/booking/domain"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// PostgresMaintenanceRepository implements domain.MaintenanceRepository using PostgreSQL.
type PostgresMaintenanceRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMaintenanceRepository creates a new PostgreSQL maintenance repository.
func NewPostgresMaintenanceRepository(pool *pgxpool.Pool) *PostgresMaintenanceRepository {
	return &PostgresMaintenanceRepository{pool: pool}
}

// Save stores a maintenance schedule. Schedules are immutable.
func (r *PostgresMaintenanceRepository) Save(ctx context.Context, schedule *domain.MaintenanceSchedule) error {
	query := `
		INSERT INTO maintenance_schedules (id, facility_id, start_time, end_time, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := sharedPersistence.Executor(ctx, r.pool).Exec(ctx, query,
		schedule.ID,
		schedule.FacilityID,
		schedule.Window.Start,
		schedule.Window.End,
		schedule.Reason,
		schedule.CreatedAt,
	)
	return err
}

// FindOverlapping retrieves the facility's maintenance windows intersecting
// the given half-open range.
func (r *PostgresMaintenanceRepository) FindOverlapping(ctx context.Context, facilityID uuid.UUID, window domain.TimeRange) ([]*domain.MaintenanceSchedule, error) {
	query := `
		SELECT id, facility_id, start_time, end_time, reason, created_at
		FROM maintenance_schedules
		WHERE facility_id = $1
		  AND start_time < $2
		  AND end_time > $3
	`

	return r.query(ctx, query, facilityID, window.End, window.Start)
}

// FindByFacility retrieves every maintenance window for a facility.
func (r *PostgresMaintenanceRepository) FindByFacility(ctx context.Context, facilityID uuid.UUID) ([]*domain.MaintenanceSchedule, error) {
	query := `
		SELECT id, facility_id, start_time, end_time, reason, created_at
		FROM maintenance_schedules
		WHERE facility_id = $1
		ORDER BY start_time
	`

	return r.query(ctx, query, facilityID)
}

func (r *PostgresMaintenanceRepository) query(ctx context.Context, query string, args ...any) ([]*domain.MaintenanceSchedule, error) {
	rows, err := sharedPersistence.Executor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*domain.MaintenanceSchedule
	for rows.Next() {
		var m domain.MaintenanceSchedule
		if err := rows.Scan(
			&m.ID, &m.FacilityID, &m.Window.Start, &m.Window.End, &m.Reason, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, &m)
	}
	return schedules, rows.Err()
}
