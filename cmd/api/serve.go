package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskboard/config"
	"taskboard/internal/httpserver"
	"taskboard/internal/migration"
	"taskboard/pkg/log"
	"taskboard/pkg/sqldb"
)

func runServe(parent context.Context, migrateFlag *bool) error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := newLogger(cfg)

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskBoard API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqldb.Open(ctx, sqldb.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return err
	}
	defer db.Close()
	logger.Infof(ctx, "Database connected (driver: %s)", cfg.Database.Driver)

	autoMigrate := cfg.Database.AutoMigrate
	if migrateFlag != nil {
		autoMigrate = *migrateFlag
	}
	if autoMigrate {
		applied, err := migration.Up(ctx, db, cfg.Database.Driver)
		if err != nil {
			logger.Error(ctx, "Failed to migrate database: ", err)
			return err
		}
		logger.Infof(ctx, "Migrations applied: %d", applied)
	} else {
		logger.Info(ctx, "Automatic migration disabled")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		DBDriver:        cfg.Database.Driver,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(context.Background(), "Server stopped gracefully")
	return nil
}

func newLogger(cfg *config.Config) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}
