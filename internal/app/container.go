package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	billingCommands "github.com/sportsms/courtside/internal/billing/application/commands"
	billingQueries "github.com/sportsms/courtside/internal/billing/application/queries"
	billingDomain "github.com/sportsms/courtside/internal/billing/domain"
	"github.com/sportsms/courtside/internal/billing/infrastructure/cache"
	"github.com/sportsms/courtside/internal/billing/infrastructure/gateway"
	bookingCommands "github.com/sportsms/courtside/internal/booking/application/commands"
	bookingQueries "github.com/sportsms/courtside/internal/booking/application/queries"
	bookingDomain "github.com/sportsms/courtside/internal/booking/domain"
	"github.com/sportsms/courtside/internal/directory"
	sharedApplication "github.com/sportsms/courtside/internal/shared/application"
	sharedDomain "github.com/sportsms/courtside/internal/shared/domain"
	"github.com/sportsms/courtside/internal/shared/infrastructure/database"
	"github.com/sportsms/courtside/internal/shared/infrastructure/migrations"
	"github.com/sportsms/courtside/internal/shared/infrastructure/outbox"
	"github.com/sportsms/courtside/pkg/config"
)

// Container creates and wires all dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	Clock  sharedDomain.Clock

	// Database
	Pool     *pgxpool.Pool
	SQLiteDB *sql.DB

	// Redis
	RedisClient *redis.Client

	// Repositories
	PlanRepo         billingDomain.PlanRepository
	SubscriptionRepo billingDomain.SubscriptionRepository
	PaymentRepo      billingDomain.PaymentRepository
	InvoiceRepo      billingDomain.InvoiceRepository
	FacilityRepo     bookingDomain.FacilityRepository
	BookingRepo      bookingDomain.BookingRepository
	MaintenanceRepo  bookingDomain.MaintenanceRepository
	OutboxRepo       outbox.Repository
	Directory        directory.Directory

	// Gateways
	Gateways billingDomain.GatewayRegistry

	// Unit of Work
	UnitOfWork sharedApplication.UnitOfWork

	// Billing Command Handlers
	CreatePlanHandler         *billingCommands.CreatePlanHandler
	CreateSubscriptionHandler *billingCommands.CreateSubscriptionHandler
	CreatePaymentHandler      *billingCommands.CreatePaymentHandler
	VerifyPaymentHandler      *billingCommands.VerifyPaymentHandler
	RefreshStatusesHandler    *billingCommands.RefreshStatusesHandler

	// Billing Query Handlers
	ListPlansHandler         *billingQueries.ListPlansHandler
	ListSubscriptionsHandler *billingQueries.ListSubscriptionsHandler
	LatestPaymentsHandler    *billingQueries.LatestPaymentsHandler
	RiskScoresHandler        *billingQueries.RiskScoresHandler

	// Booking Command Handlers
	CreateFacilityHandler      *bookingCommands.CreateFacilityHandler
	CreateBookingHandler       *bookingCommands.CreateBookingHandler
	ScheduleMaintenanceHandler *bookingCommands.ScheduleMaintenanceHandler
	UpdateBookingStatusHandler *bookingCommands.UpdateBookingStatusHandler

	// Booking Query Handlers
	ListFacilitiesHandler  *bookingQueries.ListFacilitiesHandler
	ListBookingsHandler    *bookingQueries.ListBookingsHandler
	ListMaintenanceHandler *bookingQueries.ListMaintenanceHandler
}

// NewContainer creates and wires all dependencies for the configured driver.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
		Clock:  sharedDomain.SystemClock{},
	}

	var factory *RepositoryFactory
	if cfg.UsesPostgres() {
		pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		c.Pool = pool
		factory = NewPostgresFactory(pool)
	} else {
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		c.SQLiteDB = db
		factory = NewSQLiteFactory(db)
	}

	if err := c.wireRepositories(factory); err != nil {
		c.Close()
		return nil, err
	}

	if cfg.RedisEnabled {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		c.RedisClient = redis.NewClient(opts)
		c.PlanRepo = cache.NewPlanCache(c.PlanRepo, c.RedisClient, logger)
	}

	c.Gateways = buildGatewayRegistry(cfg, logger)
	c.wireHandlers()

	return c, nil
}

func (c *Container) wireRepositories(factory *RepositoryFactory) error {
	var err error
	if c.PlanRepo, err = factory.PlanRepository(); err != nil {
		return err
	}
	if c.SubscriptionRepo, err = factory.SubscriptionRepository(); err != nil {
		return err
	}
	if c.PaymentRepo, err = factory.PaymentRepository(); err != nil {
		return err
	}
	if c.InvoiceRepo, err = factory.InvoiceRepository(); err != nil {
		return err
	}
	if c.FacilityRepo, err = factory.FacilityRepository(); err != nil {
		return err
	}
	if c.BookingRepo, err = factory.BookingRepository(); err != nil {
		return err
	}
	if c.MaintenanceRepo, err = factory.MaintenanceRepository(); err != nil {
		return err
	}
	if c.OutboxRepo, err = factory.OutboxRepository(); err != nil {
		return err
	}
	if c.Directory, err = factory.Directory(); err != nil {
		return err
	}
	if c.UnitOfWork, err = factory.UnitOfWork(); err != nil {
		return err
	}
	return nil
}

func (c *Container) wireHandlers() {
	c.CreatePlanHandler = billingCommands.NewCreatePlanHandler(c.PlanRepo)
	c.CreateSubscriptionHandler = billingCommands.NewCreateSubscriptionHandler(
		c.PlanRepo, c.SubscriptionRepo, c.InvoiceRepo, c.OutboxRepo, c.UnitOfWork, c.Clock)
	c.CreatePaymentHandler = billingCommands.NewCreatePaymentHandler(
		c.SubscriptionRepo, c.PaymentRepo, c.Clock)
	c.VerifyPaymentHandler = billingCommands.NewVerifyPaymentHandler(
		c.PaymentRepo, c.SubscriptionRepo, c.Gateways, c.OutboxRepo, c.UnitOfWork, c.Clock, c.Logger)
	c.RefreshStatusesHandler = billingCommands.NewRefreshStatusesHandler(
		c.SubscriptionRepo, c.OutboxRepo, c.UnitOfWork, c.Clock, c.Logger)

	c.ListPlansHandler = billingQueries.NewListPlansHandler(c.PlanRepo)
	c.ListSubscriptionsHandler = billingQueries.NewListSubscriptionsHandler(c.SubscriptionRepo)
	c.LatestPaymentsHandler = billingQueries.NewLatestPaymentsHandler(c.PaymentRepo)
	c.RiskScoresHandler = billingQueries.NewRiskScoresHandler(c.SubscriptionRepo, c.InvoiceRepo, c.Clock)

	c.CreateFacilityHandler = bookingCommands.NewCreateFacilityHandler(c.FacilityRepo, c.Directory)
	c.CreateBookingHandler = bookingCommands.NewCreateBookingHandler(
		c.FacilityRepo, c.BookingRepo, c.MaintenanceRepo, c.Directory, c.OutboxRepo, c.UnitOfWork)
	c.ScheduleMaintenanceHandler = bookingCommands.NewScheduleMaintenanceHandler(
		c.FacilityRepo, c.BookingRepo, c.MaintenanceRepo, c.OutboxRepo, c.UnitOfWork, c.Clock)
	c.UpdateBookingStatusHandler = bookingCommands.NewUpdateBookingStatusHandler(
		c.BookingRepo, c.OutboxRepo, c.UnitOfWork)

	c.ListFacilitiesHandler = bookingQueries.NewListFacilitiesHandler(c.FacilityRepo)
	c.ListBookingsHandler = bookingQueries.NewListBookingsHandler(c.BookingRepo)
	c.ListMaintenanceHandler = bookingQueries.NewListMaintenanceHandler(c.MaintenanceRepo)
}

func buildGatewayRegistry(cfg *config.Config, logger *slog.Logger) *gateway.Registry {
	registry := gateway.NewRegistry(gateway.NewMockGateway())

	if cfg.StripeAPIKey != "" {
		stripe := gateway.NewBreakerGateway(
			string(billingDomain.ProviderStripe),
			gateway.NewStripeGateway(cfg.StripeAPIKey),
			gateway.DefaultBreakerConfig(),
			logger,
		)
		registry.Register(billingDomain.ProviderStripe, stripe)
	}

	return registry
}

// Close releases all resources held by the container.
func (c *Container) Close() {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Error("failed to close redis client", slog.String("error", err.Error()))
		}
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
	if c.SQLiteDB != nil {
		if err := c.SQLiteDB.Close(); err != nil {
			c.Logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}
}
