// Command migrate applies the embedded schema migrations and exits. The
// server runs them on startup too; this exists for deploy pipelines that
// migrate before rolling instances.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/oakinyemi/masjid-receipts/internal/common"
	"github.com/oakinyemi/masjid-receipts/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(1)
	}

	conn, dialect, err := repository.Open(context.Background(), cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := repository.RunMigrations(conn, dialect, logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied", "dialect", dialect)
}
