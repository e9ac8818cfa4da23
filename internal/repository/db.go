package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/oakinyemi/masjid-receipts/internal/common"
)

// Dialects supported by the persistence layer. The DSN decides which driver
// opens the connection: postgres:// URLs go through pgx, everything else is
// treated as a sqlite file path.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Open connects to the database described by cfg and returns the handle plus
// the resolved dialect.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*sql.DB, string, error) {
	dialect := DialectSQLite
	driver := "sqlite"
	dsn := cfg.DSN
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialect = DialectPostgres
		driver = "pgx"
	} else if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, "", fmt.Errorf("create db directory: %w", err)
		}
	}

	logger.Info("connecting to database", "dialect", dialect)
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		logger.Error("failed to connect to database", "error", err)
		return nil, "", fmt.Errorf("ping database: %w", err)
	}

	logger.Info("successfully connected to database")
	return conn, dialect, nil
}

// placeholders builds a $1..$n list starting at offset+1. Both sqlite and
// postgres accept the $n placeholder form.
func placeholders(n, offset int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", offset+i+1)
	}
	return strings.Join(parts, ", ")
}
