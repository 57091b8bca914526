package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "adpacer/internal/adapter/http"
	"adpacer/internal/adapter/scheduler"
	"adpacer/internal/adapter/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the routine scheduler",
	RunE:  runServe,
}

// runServe initializes the store and the engine, starts the scheduler and
// the HTTP server, and shuts both down gracefully on SIGINT or SIGTERM.
func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	locker, closeLocker, err := newLocker(ctx)
	if err != nil {
		return err
	}
	defer closeLocker()

	clk, err := newClock()
	if err != nil {
		return err
	}

	engine := usecase.NewEngineUseCase(store, clk, logger)
	catalog := usecase.NewCatalogUseCase(store, clk, cfg.Billing.DefaultHourlyRate, logger)
	sched := scheduler.New(engine, locker, cfg.Scheduler, logger)

	stopScheduler := func() {}
	if cfg.Scheduler.Enabled {
		stopScheduler = sched.Start(ctx)
	}

	handler := httpadapter.NewHandler(catalog, sched, cfg.HTTP.CORSOrigins, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	var exitCode int
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		exitCode = 1
	}

	stopScheduler()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return exitError{code: exitCode}
}
