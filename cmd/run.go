package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"adpacer/internal/adapter/scheduler"
	"adpacer/internal/adapter/usecase"
	"adpacer/internal/core/port"
)

var runCmd = &cobra.Command{
	Use:       "run [activation|accrual|rollup|all]",
	Short:     "Run routine passes once and print their statistics",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"activation", "accrual", "rollup", "all"},
	RunE:      runRoutines,
}

func runRoutines(cmd *cobra.Command, args []string) error {
	routines := port.Routines
	if args[0] != "all" {
		routines = []port.Routine{port.Routine(args[0])}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
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

	sched := scheduler.New(usecase.NewEngineUseCase(store, clk, logger), locker, cfg.Scheduler, logger)
	enc := json.NewEncoder(os.Stdout)
	for _, r := range routines {
		stats, err := sched.RunOnce(ctx, r)
		if err != nil {
			return fmt.Errorf("%s: %w", r, err)
		}
		if err = enc.Encode(stats); err != nil {
			return err
		}
	}
	return nil
}

