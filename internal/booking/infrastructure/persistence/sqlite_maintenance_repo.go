package persistence

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/sportsms/courtside/internal/booking/domain"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
)

// SQLiteMaintenanceRepository implements domain.MaintenanceRepository using SQLite.
type SQLiteMaintenanceRepository struct {
	db *sql.DB
}

// NewSQLiteMaintenanceRepository creates a new SQLite maintenance repository.
func NewSQLiteMaintenanceRepository(db *sql.DB) *SQLiteMaintenanceRepository {
	return &SQLiteMaintenanceRepository{db: db}
}

// Save stores a maintenance schedule. Schedules are immutable.
func (r *SQLiteMaintenanceRepository) Save(ctx context.Context, schedule *domain.MaintenanceSchedule) error {
	query := `
		INSERT INTO maintenance_schedules (id, facility_id, start_time, end_time, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	db := sharedPersistence.SQLiteDB(ctx, r.db)
	_, err := db.ExecContext(ctx, query,
		schedule.ID.String(),
		schedule.FacilityID.String(),
		formatTime(schedule.Window.Start),
		formatTime(schedule.Window.End),
		schedule.Reason,
		formatTime(schedule.CreatedAt),
	)
	return err
}

// FindOverlapping retrieves the facility's maintenance windows intersecting
// the given half-open range.
func (r *SQLiteMaintenanceRepository) FindOverlapping(ctx context.Context, facilityID uuid.UUID, window domain.TimeRange) ([]*domain.MaintenanceSchedule, error) {
	query := `
		SELECT id, facility_id, start_time, end_time, reason, created_at
		FROM maintenance_schedules
		WHERE facility_id = ?
		  AND start_time < ?
		  AND end_time > ?
	`

	return r.query(ctx, query, facilityID.String(), formatTime(window.End), formatTime(window.Start))
}

// FindByFacility retrieves every maintenance window for a facility.
func (r *SQLiteMaintenanceRepository) FindByFacility(ctx context.Context, facilityID uuid.UUID) ([]*domain.MaintenanceSchedule, error) {
	query := `
		SELECT id, facility_id, start_time, end_time, reason, created_at
		FROM maintenance_schedules
		WHERE facility_id = ?
		ORDER BY start_time
	`

	return r.query(ctx, query, facilityID.String())
}

func (r *SQLiteMaintenanceRepository) query(ctx context.Context, query string, args ...any) ([]*domain.MaintenanceSchedule, error) {
	db := sharedPersistence.SQLiteDB(ctx, r.db)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*domain.MaintenanceSchedule
	for rows.Next() {
		var (
			id, facility, start, end, createdAt string
			m                                   domain.MaintenanceSchedule
		)
		if err := rows.Scan(&id, &facility, &start, &end, &m.Reason, &createdAt); err != nil {
			return nil, err
		}

		m.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		m.FacilityID, err = uuid.Parse(facility)
		if err != nil {
			return nil, err
		}
		m.Window.Start, err = parseTime(start)
		if err != nil {
			return nil, err
		}
		m.Window.End, err = parseTime(end)
		if err != nil {
			return nil, err
		}
		m.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, err
		}

		schedules = append(schedules, &m)
	}
	return schedules, rows.Err()
}
