package app

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	billingDomain "github.com/sportsms/courtside/internal/billing/domain"
	billingPersistence "github.com/sportsms/courtside/internal/billing/infrastructure/persistence"
	bookingDomain "github.com/sportsms/courtside/internal/booking/domain"
	bookingPersistence "github.com/sportsms/courtside/internal/booking/infrastructure/persistence"
	"github.com/sportsms/courtside/internal/directory"
	sharedApplication "github.com/sportsms/courtside/internal/shared/application"
	sharedPersistence "github.com/sportsms/courtside/internal/shared/infrastructure/persistence"
	"github.com/sportsms/courtside/internal/shared/infrastructure/outbox"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// RepositoryFactory creates repositories for the configured database driver.
// Exactly one of pool or db is set.
type RepositoryFactory struct {
	driver string
	pool   *pgxpool.Pool
	db     *sql.DB
}

// NewPostgresFactory creates a factory backed by a pgx pool.
func NewPostgresFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{driver: DriverPostgres, pool: pool}
}

// NewSQLiteFactory creates a factory backed by a SQLite handle.
func NewSQLiteFactory(db *sql.DB) *RepositoryFactory {
	return &RepositoryFactory{driver: DriverSQLite, db: db}
}

// PlanRepository creates a plan repository for the configured driver.
func (f *RepositoryFactory) PlanRepository() (billingDomain.PlanRepository, error) {
	switch f.driver {
	case DriverPostgres:
		return billingPersistence.NewPostgresPlanRepository(f.pool), nil
	case DriverSQLite:
		return billingPersistence.NewSQLitePlanRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// SubscriptionRepository creates a subscription repository for the configured driver.
func (f *RepositoryFactory) SubscriptionRepository() (billingDomain.SubscriptionRepository, error) {
	switch f.driver {
	case DriverPostgres:
		return billingPersistence.NewPostgresSubscriptionRepository(f.pool), nil
	case DriverSQLite:
		return billingPersistence.NewSQLiteSubscriptionRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// PaymentRepository creates a payment repository for the configured driver.
func (f *RepositoryFactory) PaymentRepository() (billingDomain.PaymentRepository, error) {
	switch f.driver {
	case DriverPostgres:
		return billingPersistence.NewPostgresPaymentRepository(f.pool), nil
	case DriverSQLite:
		return billingPersistence.NewSQLitePaymentRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// InvoiceRepository creates an invoice repository for the configured driver.
func (f *RepositoryFactory) InvoiceRepository() (billingDomain.InvoiceRepository, error) {
	switch f.driver {
	case DriverPostgres:
		return billingPersistence.NewPostgresInvoiceRepository(f.pool), nil
	case DriverSQLite:
		return billingPersistence.NewSQLiteInvoiceRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// FacilityRepository creates a facility repository for the configured driver.
func (f *RepositoryFactory) FacilityRepository() (bookingDomain.FacilityRepository, error) {
	switch f.driver {
	case DriverPostgres:
		return bookingPersistence.NewPostgresFacilityRepository(f.pool), nil
	case DriverSQLite:
		return bookingPersistence.NewSQLiteFacilityRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// BookingRepository creates a booking repository for the configured driver.
func (f *RepositoryFactory) BookingRepository() (bookingDomain.BookingRepository, error) {
	switch f.driver {
	case DriverPostgres:
		return bookingPersistence.NewPostgresBookingRepository(f.pool), nil
	case DriverSQLite:
		return bookingPersistence.NewSQLiteBookingRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// MaintenanceRepository creates a maintenance repository for the configured driver.
func (f *RepositoryFactory) MaintenanceRepository() (bookingDomain.MaintenanceRepository, error) {
	switch f.driver {
	case DriverPostgres:
		return bookingPersistence.NewPostgresMaintenanceRepository(f.pool), nil
	case DriverSQLite:
		return bookingPersistence.NewSQLiteMaintenanceRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// OutboxRepository creates an outbox repository for the configured driver.
func (f *RepositoryFactory) OutboxRepository() (outbox.Repository, error) {
	switch f.driver {
	case DriverPostgres:
		return outbox.NewPostgresRepository(f.pool), nil
	case DriverSQLite:
		return outbox.NewSQLiteRepository(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// Directory creates the user/club lookup collaborator for the configured driver.
func (f *RepositoryFactory) Directory() (directory.Directory, error) {
	switch f.driver {
	case DriverPostgres:
		return directory.NewPostgresDirectory(f.pool), nil
	case DriverSQLite:
		return directory.NewSQLiteDirectory(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// UnitOfWork creates the transactional unit of work for the configured driver.
func (f *RepositoryFactory) UnitOfWork() (sharedApplication.UnitOfWork, error) {
	switch f.driver {
	case DriverPostgres:
		return sharedPersistence.NewPostgresUnitOfWork(f.pool), nil
	case DriverSQLite:
		return sharedPersistence.NewSQLiteUnitOfWork(f.db), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}
