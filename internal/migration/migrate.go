package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"taskboard/pkg/sqldb"
)

//go:embed sqlite/*.sql postgres/*.sql
var migrationsFS embed.FS

// Migration is one versioned schema step.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// Up applies every pending migration for driver and returns how many were applied.
func Up(ctx context.Context, db *sql.DB, driver string) (int, error) {
	migrations, applied, err := prepare(ctx, db, driver)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := apply(ctx, db, driver, m); err != nil {
			return count, fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		count++
	}
	return count, nil
}

// Down reverts the most recently applied migration. It returns the reverted version, or 0 when
// nothing was applied.
func Down(ctx context.Context, db *sql.DB, driver string) (int, error) {
	migrations, applied, err := prepare(ctx, db, driver)
	if err != nil {
		return 0, err
	}

	for i := len(migrations) - 1; i >= 0; i-- {
		m := migrations[i]
		if !applied[m.Version] {
			continue
		}
		if err := revert(ctx, db, driver, m); err != nil {
			return 0, fmt.Errorf("failed to revert migration %d (%s): %w", m.Version, m.Name, err)
		}
		return m.Version, nil
	}
	return 0, nil
}

func prepare(ctx context.Context, db *sql.DB, driver string) ([]Migration, map[int]bool, error) {
	if err := sqldb.ValidateDriver(driver); err != nil {
		return nil, nil, err
	}
	if err := createMigrationsTable(ctx, db); err != nil {
		return nil, nil, fmt.Errorf("failed to create migrations table: %w", err)
	}
	migrations, err := Load(driver)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}
	return migrations, applied, nil
}

// Load returns the embedded migrations for driver, ordered by version.
func Load(driver string) ([]Migration, error) {
	entries, err := fs.ReadDir(migrationsFS, driver)
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		version, name := parseFilename(entry.Name())
		if version == 0 {
			continue
		}

		upSQL, err := migrationsFS.ReadFile(driver + "/" + entry.Name())
		if err != nil {
			return nil, err
		}
		downSQL, err := migrationsFS.ReadFile(driver + "/" + strings.Replace(entry.Name(), ".up.sql", ".down.sql", 1))
		if err != nil {
			return nil, err
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			Up:      string(upSQL),
			Down:    string(downSQL),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	const query = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	_, err := db.ExecContext(ctx, query)
	return err
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func apply(ctx context.Context, db *sql.DB, driver string, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, m.Up); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ("+placeholder(driver)+")", m.Version); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func revert(ctx context.Context, db *sql.DB, driver string, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, m.Down); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = "+placeholder(driver), m.Version); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func placeholder(driver string) string {
	if driver == sqldb.DriverPostgres {
		return "$1"
	}
	return "?"
}

// parseFilename splits "000001_create_tasks.up.sql" into (1, "create_tasks").
func parseFilename(filename string) (int, string) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, ""
	}
	base := strings.TrimSuffix(filename, ".up.sql")
	if idx := strings.Index(base, "_"); idx >= 0 {
		return version, base[idx+1:]
	}
	return version, base
}
