package port

import (
	"context"
	"errors"
	"time"
)

// ErrRoutineBusy is returned when a pass cannot start because another pass
// of the same routine holds its lock.
var ErrRoutineBusy = errors.New("routine pass already running")

// Routine names a scheduling routine.
type Routine string

const (
	RoutineActivation Routine = "activation"
	RoutineAccrual    Routine = "accrual"
	RoutineRollup     Routine = "rollup"
)

// Routines lists every routine in its intended logical order.
var Routines = []Routine{RoutineActivation, RoutineAccrual, RoutineRollup}

// Engine is the primary port of the budget engine. Each method performs one
// full pass over the store and is safe to call repeatedly: state is either
// recomputed from source rows or derived from current fields. A returned
// error means the pass was aborted (store unavailable); failures of single
// ads or brands are logged and counted in PassStats instead.
type Engine interface {
	// RunAdActivation turns ads on or off from their window and their
	// brand's headroom.
	RunAdActivation(ctx context.Context) (PassStats, error)
	// RunSpendAccrual upserts today's AdSpend for every active ad.
	RunSpendAccrual(ctx context.Context) (PassStats, error)
	// RunBrandRollup recomputes brand totals and enforces the budget cutoff.
	RunBrandRollup(ctx context.Context) (PassStats, error)
	// Run dispatches to the routine with the given name.
	Run(ctx context.Context, routine Routine) (PassStats, error)
}

// PassStats summarises one routine pass.
type PassStats struct {
	Routine Routine `json:"routine"`
	// Scanned counts the entities visited.
	Scanned int `json:"scanned"`
	// Changed counts the entities whose persisted state was written.
	Changed int `json:"changed"`
	// Failed counts entities skipped because of an error.
	Failed int `json:"failed"`
}

// Clock is the source of the current instant. Routines never call
// time.Now directly.
type Clock interface {
	Now() time.Time
}

// Locker guards a routine against running concurrently with itself.
type Locker interface {
	// TryLock acquires the named lock for at most ttl. ok is false when the
	// lock is held elsewhere; release must be called when ok is true.
	TryLock(ctx context.Context, name string, ttl time.Duration) (release func(), ok bool, err error)
}
