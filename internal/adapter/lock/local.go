// Package lock provides the pass locks that keep two runs of the same
// routine from overlapping.
package lock

import (
	"context"
	"sync"
	"time"

	"adpacer/internal/core/port"
)

var _ port.Locker = (*Local)(nil)

// Local is an in-process lock for single replica deployments. The TTL is
// ignored: a pass always releases its lock when it returns.
type Local struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewLocal() *Local {
	return &Local{held: make(map[string]bool)}
}

func (l *Local) TryLock(_ context.Context, name string, _ time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[name] {
		return nil, false, nil
	}
	l.held[name] = true

	var once sync.Once
	release := func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, name)
			l.mu.Unlock()
		})
	}
	return release, true, nil
}
