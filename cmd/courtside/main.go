package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sportsms/courtside/adapter/cli"
	"github.com/sportsms/courtside/adapter/cli/booking"
	"github.com/sportsms/courtside/adapter/cli/facility"
	"github.com/sportsms/courtside/adapter/cli/maintenance"
	"github.com/sportsms/courtside/adapter/cli/payment"
	"github.com/sportsms/courtside/adapter/cli/plan"
	"github.com/sportsms/courtside/adapter/cli/subscription"
	"github.com/sportsms/courtside/internal/app"
	"github.com/sportsms/courtside/pkg/config"
)

func main() {
	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// In development without .env, use defaults
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	// Update logger level based on config
	if cfg.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	cli.SetLogger(logger)

	// Try to initialize the full container
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
			// In development, allow CLI to run without database
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()
		cli.SetApp(container)
	}

	// Register commands
	cli.AddCommand(plan.Cmd)
	cli.AddCommand(subscription.Cmd)
	cli.AddCommand(payment.Cmd)
	cli.AddCommand(facility.Cmd)
	cli.AddCommand(booking.Cmd)
	cli.AddCommand(maintenance.Cmd)

	// Execute CLI
	cli.Execute()
}
