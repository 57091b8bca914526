package memory

import (
	"testing"

	"adpacer/internal/adapter/storetest"
	"adpacer/internal/core/port"
)

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) port.Store { return New() })
}
