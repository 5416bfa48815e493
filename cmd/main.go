package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpadapter "mesa-market/internal/adapter/http"
	"mesa-market/internal/adapter/postgres"
	"mesa-market/internal/adapter/usecase"
	"mesa-market/internal/config"
	"mesa-market/internal/db"
	"mesa-market/internal/worker"
)

// main is the entry point of the mesa-market service. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, repositories and use cases, starts the reconciliation
// sweep and the HTTP server. On receiving a termination signal it shuts
// both down gracefully.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	var logHandler slog.Handler
	if cfg.Log.JSON() {
		logHandler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		logHandler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(logHandler)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	offerRepo := postgres.NewOfferRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	offerSvc := usecase.NewOfferUseCase(offerRepo)
	orderSvc := usecase.NewOrderUseCase(orderRepo, offerRepo, nil)
	sweep := worker.NewSweep(offerSvc, orderSvc, cfg.Sweep.Interval, logger)

	var wg sync.WaitGroup
	if cfg.Sweep.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sweep.Run(ctx)
		}()
	}

	handler := httpadapter.NewHandler(offerSvc, orderSvc, sweep, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	wg.Wait()
}
