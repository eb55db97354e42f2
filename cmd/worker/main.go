package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sportsms/courtside/internal/app"
	"github.com/sportsms/courtside/internal/shared/infrastructure/eventbus"
	"github.com/sportsms/courtside/internal/shared/infrastructure/outbox"
	"github.com/sportsms/courtside/pkg/config"
)

func main() {
	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	logger.Info("starting courtside worker")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Update logger level based on config
	if cfg.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	// Initialize container (database, repositories, handlers)
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()
	logger.Info("connected to database", "driver", cfg.DatabaseDriver)

	// Create event publisher
	var publisher eventbus.Publisher
	rabbitPublisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			logger.Warn("RabbitMQ not available, using noop publisher", "error", err)
			publisher = eventbus.NewNoopPublisher(logger)
		} else {
			logger.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
	} else {
		publisher = rabbitPublisher
		defer rabbitPublisher.Close()
	}
	logger.Info("event publisher initialized")

	// Create outbox processor
	processorConfig := outbox.ProcessorConfig{
		PollInterval: cfg.OutboxPollInterval,
		BatchSize:    cfg.OutboxBatchSize,
		MaxRetries:   cfg.OutboxMaxRetries,
	}
	processor := outbox.NewProcessor(container.OutboxRepo, publisher, processorConfig, logger)

	if cfg.OutboxProcessorEnabled {
		logger.Info("starting outbox processor",
			"poll_interval", processorConfig.PollInterval,
			"batch_size", processorConfig.BatchSize,
			"max_retries", processorConfig.MaxRetries,
		)
		if err := processor.Start(ctx); err != nil {
			logger.Error("failed to start outbox processor", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Info("outbox processor disabled")
	}

	// Schedule the daily subscription lifecycle sweep
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.SweepCronSpec, func() {
		result, err := container.RefreshStatusesHandler.Handle(ctx)
		if err != nil {
			logger.Error("lifecycle sweep failed", "error", err)
			return
		}
		logger.Info("lifecycle sweep finished",
			"evaluated", result.Evaluated,
			"transitioned", result.Transitioned,
			"failed", result.Failed,
		)
	})
	if err != nil {
		logger.Error("invalid sweep cron spec", "spec", cfg.SweepCronSpec, "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	logger.Info("lifecycle sweep scheduled", "spec", cfg.SweepCronSpec)

	// Periodically purge published outbox messages past retention
	cleanupTicker := time.NewTicker(cfg.OutboxCleanupInterval)
	defer cleanupTicker.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-cleanupTicker.C:
				deleted, err := container.OutboxRepo.DeleteOld(ctx, cfg.OutboxRetentionDays)
				if err != nil {
					logger.Error("outbox cleanup failed", "error", err)
					continue
				}
				if deleted > 0 {
					logger.Info("outbox cleanup completed", "deleted", deleted, "retention_days", cfg.OutboxRetentionDays)
				}
			}
		}
	}()

	// Wait for shutdown
	<-ctx.Done()
	logger.Info("shutting down worker")

	cronCtx := scheduler.Stop()
	<-cronCtx.Done()
	processor.Stop()
	logger.Info("worker stopped")
}
