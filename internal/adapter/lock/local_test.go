package lock

import (
	"testing"

	"adpacer/internal/core/port"
)

func TestLocal(t *testing.T) {
	runLockerTests(t, func(*testing.T) port.Locker { return NewLocal() })
}
