// Package clock provides port.Clock implementations: the wall clock in a
// configured location and a settable clock for tests and dry runs.
package clock

import (
	"sync"
	"time"
)

// System reads the wall clock and reports instants in Location. Calendar
// days used by the routines (today, current month) follow that location.
type System struct {
	Location *time.Location
}

// NewSystem returns a wall clock in loc, defaulting to UTC.
func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.UTC
	}
	return System{Location: loc}
}

func (c System) Now() time.Time {
	return time.Now().In(c.Location)
}

// Fake is a manually driven clock. It is safe for concurrent use.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake returns a clock frozen at now.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to now.
func (c *Fake) Set(now time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Advance moves the clock forward by d.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
