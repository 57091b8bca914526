package configs

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Clock selects the time zone that defines "today" and "this month" for the
// budget routines.
type Clock struct {
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
}

// Location loads the configured time zone.
func (c Clock) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Billing holds the pricing defaults used by spend reports.
type Billing struct {
	DefaultHourlyRate decimal.Decimal `env:"DEFAULT_HOURLY_RATE" envDefault:"1"`
}
