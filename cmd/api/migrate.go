package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/config"
	"taskboard/internal/migration"
	"taskboard/pkg/log"
	"taskboard/pkg/sqldb"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), func(ctx context.Context, db *sql.DB, driver string, l log.Logger) error {
					applied, err := migration.Up(ctx, db, driver)
					if err != nil {
						return err
					}
					l.Infof(ctx, "Migrations applied: %d", applied)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), func(ctx context.Context, db *sql.DB, driver string, l log.Logger) error {
					version, err := migration.Down(ctx, db, driver)
					if err != nil {
						return err
					}
					if version == 0 {
						l.Info(ctx, "Nothing to revert")
						return nil
					}
					l.Infof(ctx, "Reverted migration %d", version)
					return nil
				})
			},
		},
	)
	return cmd
}

func withDB(ctx context.Context, fn func(ctx context.Context, db *sql.DB, driver string, l log.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg)

	db, err := sqldb.Open(ctx, sqldb.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, db, cfg.Database.Driver, logger)
}
