package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	dbfs "github.com/oakinyemi/masjid-receipts/db"
)

// RunMigrations applies the embedded migrations for the given dialect.
func RunMigrations(conn *sql.DB, dialect string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	var driver database.Driver
	var err error
	switch dialect {
	case DialectSQLite:
		driver, err = migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	case DialectPostgres:
		driver, err = migratepg.WithInstance(conn, &migratepg.Config{})
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}
	if err != nil {
		return fmt.Errorf("create %s migration driver: %w", dialect, err)
	}

	sub, err := fs.Sub(dbfs.MigrationsFS, "migrations/"+dialect)
	if err != nil {
		return fmt.Errorf("migrations subtree: %w", err)
	}
	src, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations applied", "dialect", dialect)
	return nil
}
