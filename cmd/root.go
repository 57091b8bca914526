package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"adpacer/internal/config"
)

// exitError carries a specific process exit code out of a command.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit %d", e.code)
}

var (
	cfg       config.Config
	logger    *slog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "adpacer",
	Short:         "Ad budget pacing engine",
	Long:          "Activates ads inside their schedule, accrues hourly spend and cuts brands off at their daily and monthly budgets.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		// Load configuration from environment variables.
		if cfg, err = config.Load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, logCloser = cfg.Log.NewLogger()
		logger = logger.With(slog.String("env", cfg.Env))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, runCmd, migrateCmd, seedCmd)
}

func execute() int {
	err := rootCmd.ExecuteContext(context.Background())
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}()
	if err == nil {
		return 0
	}
	var exit exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	if logger != nil {
		logger.Error("command failed", slog.Any("error", err))
	} else {
		slog.Error("command failed", slog.Any("error", err))
	}
	return 1
}
