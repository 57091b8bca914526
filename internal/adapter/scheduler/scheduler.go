// Package scheduler drives the budget routines on fixed intervals.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"adpacer/internal/config/configs"
	"adpacer/internal/core/port"
	"adpacer/internal/metrics"
)

const lockPrefix = "adpacer:routine:"

// Scheduler runs every routine on its own ticker. A pass takes the
// routine's lock, runs under PassTimeout and is recorded in metrics.
type Scheduler struct {
	engine    port.Engine
	locker    port.Locker
	cfg       configs.Scheduler
	logger    *slog.Logger
	intervals map[port.Routine]time.Duration
}

func New(engine port.Engine, locker port.Locker, cfg configs.Scheduler, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		engine: engine,
		locker: locker,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "scheduler")),
		intervals: map[port.Routine]time.Duration{
			port.RoutineActivation: orDefault(cfg.ActivationInterval),
			port.RoutineAccrual:    orDefault(cfg.AccrualInterval),
			port.RoutineRollup:     orDefault(cfg.RollupInterval),
		},
	}
}

func orDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Start runs each routine once in logical order, then launches one ticker
// loop per routine. The returned function stops the loops and waits for
// running passes to return.
func (s *Scheduler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, r := range port.Routines {
			if ctx.Err() != nil {
				return
			}
			s.tick(ctx, r)
		}
		for _, r := range port.Routines {
			wg.Add(1)
			go func(r port.Routine) {
				defer wg.Done()
				s.loop(ctx, r)
			}(r)
		}
	}()

	s.logger.Info("scheduler started",
		slog.Duration("activation_interval", s.intervals[port.RoutineActivation]),
		slog.Duration("accrual_interval", s.intervals[port.RoutineAccrual]),
		slog.Duration("rollup_interval", s.intervals[port.RoutineRollup]),
	)
	return func() {
		cancel()
		wg.Wait()
		s.logger.Info("scheduler stopped")
	}
}

func (s *Scheduler) loop(ctx context.Context, r port.Routine) {
	ticker := time.NewTicker(s.intervals[r])
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, r)
		}
	}
}

// tick runs one pass and only logs the outcome; the next tick is the retry.
func (s *Scheduler) tick(ctx context.Context, r port.Routine) {
	stats, err := s.RunOnce(ctx, r)
	switch {
	case errors.Is(err, port.ErrRoutineBusy):
		s.logger.Debug("pass skipped, lock held", slog.String("routine", string(r)))
	case err != nil:
		s.logger.Error("pass failed", slog.String("routine", string(r)), slog.Any("error", err))
	default:
		s.logger.Info("pass completed",
			slog.String("routine", string(r)),
			slog.Int("scanned", stats.Scanned),
			slog.Int("changed", stats.Changed),
			slog.Int("failed", stats.Failed),
		)
	}
}

// RunOnce runs a single pass of routine under its lock and the pass
// timeout. It returns port.ErrRoutineBusy when the lock is held.
func (s *Scheduler) RunOnce(ctx context.Context, r port.Routine) (port.PassStats, error) {
	release, ok, err := s.locker.TryLock(ctx, lockPrefix+string(r), s.cfg.LockTTL)
	if err != nil {
		return port.PassStats{Routine: r}, fmt.Errorf("lock %s: %w", r, err)
	}
	if !ok {
		metrics.ObserveSkipped(r)
		return port.PassStats{Routine: r}, port.ErrRoutineBusy
	}
	defer release()

	if s.cfg.PassTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.PassTimeout)
		defer cancel()
	}

	start := time.Now()
	stats, err := s.engine.Run(ctx, r)
	metrics.ObservePass(stats, err, time.Since(start))
	return stats, err
}
