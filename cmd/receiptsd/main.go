package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/oakinyemi/masjid-receipts/internal/auth"
	"github.com/oakinyemi/masjid-receipts/internal/common"
	"github.com/oakinyemi/masjid-receipts/internal/export"
	"github.com/oakinyemi/masjid-receipts/internal/receipts"
	"github.com/oakinyemi/masjid-receipts/internal/reports"
	"github.com/oakinyemi/masjid-receipts/internal/repository"
	"github.com/oakinyemi/masjid-receipts/internal/server"
	"github.com/oakinyemi/masjid-receipts/internal/tags"
	"github.com/oakinyemi/masjid-receipts/internal/users"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, dialect, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := repository.RunMigrations(conn, dialect, logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	receiptRepo := repository.NewReceiptRepository(conn, logger)
	tagRepo := repository.NewTagRepository(conn, logger)
	userRepo := repository.NewUserRepository(conn, logger)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userService := users.NewService(userRepo, tokens, logger)
	receiptService := receipts.NewService(receiptRepo, tagRepo, userRepo, logger)
	tagService := tags.NewService(tagRepo, receiptRepo, logger)
	reportService := reports.NewService(receiptRepo, tagRepo, userRepo, export.EncodeXLSX, logger)

	srv := server.New(userService, receiptService, tagService, reportService, logger)

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr, "dialect", dialect)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
