package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the singleton pricing configuration. HourlyRate converts
// spend hours into a cost in reports.
type Settings struct {
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
