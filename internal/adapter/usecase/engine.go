package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

var _ port.Engine = (*EngineUseCase)(nil)

// EngineUseCase implements the three budget routines on top of an
// EngineStore. It holds no state between passes: everything a pass needs is
// read from the store at its start, so passes may be retried freely.
type EngineUseCase struct {
	store  port.EngineStore
	clock  port.Clock
	logger *slog.Logger
}

// NewEngineUseCase creates the engine. The clock decides what "now",
// "today" and "this month" mean for every pass.
func NewEngineUseCase(store port.EngineStore, clock port.Clock, logger *slog.Logger) *EngineUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &EngineUseCase{store: store, clock: clock, logger: logger}
}

// Run dispatches to the routine with the given name.
func (u *EngineUseCase) Run(ctx context.Context, routine port.Routine) (port.PassStats, error) {
	switch routine {
	case port.RoutineActivation:
		return u.RunAdActivation(ctx)
	case port.RoutineAccrual:
		return u.RunSpendAccrual(ctx)
	case port.RoutineRollup:
		return u.RunBrandRollup(ctx)
	default:
		return port.PassStats{Routine: routine}, &domain.ValidationError{
			Field:   "routine",
			Message: fmt.Sprintf("unknown routine %q", routine),
		}
	}
}

// pass tracks the statistics and the logger of one routine run.
type pass struct {
	stats  port.PassStats
	logger *slog.Logger
}

func (u *EngineUseCase) begin(routine port.Routine) *pass {
	return &pass{
		stats: port.PassStats{Routine: routine},
		logger: u.logger.With(
			slog.String("routine", string(routine)),
			slog.String("run_id", uuid.NewString()),
		),
	}
}

// entityFailed records the failure of a single ad or brand. Store outages
// are returned so that the caller aborts the whole pass; anything else is
// logged, counted and swallowed.
func (p *pass) entityFailed(msg string, err error, attrs ...any) error {
	if errors.Is(err, domain.ErrStoreUnavailable) || errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	p.stats.Failed++
	p.logger.Error(msg, append(attrs, slog.Any("error", err))...)
	return nil
}

// aborted logs an aborted pass and returns err wrapped with context.
func (p *pass) aborted(step string, err error) (port.PassStats, error) {
	p.logger.Error("pass aborted",
		slog.String("step", step),
		slog.Int("scanned", p.stats.Scanned),
		slog.Any("error", err),
	)
	return p.stats, fmt.Errorf("%s %s: %w", p.stats.Routine, step, err)
}

func (p *pass) finish() (port.PassStats, error) {
	p.logger.Debug("pass finished",
		slog.Int("scanned", p.stats.Scanned),
		slog.Int("changed", p.stats.Changed),
		slog.Int("failed", p.stats.Failed),
	)
	return p.stats, nil
}
