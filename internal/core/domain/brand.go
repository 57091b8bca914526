package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Brand owns ads and the budgets they draw from.
// Spend values are hours as recorded in AdSpend.
type Brand struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	DailyBudget     decimal.Decimal `json:"daily_budget"`
	MonthlyBudget   decimal.Decimal `json:"monthly_budget"`
	DailySpend      decimal.Decimal `json:"daily_spend"`
	MonthlySpend    decimal.Decimal `json:"monthly_spend"`
	LastSpendUpdate *time.Time      `json:"last_spend_update"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// HasHeadroom reports whether both the daily and the monthly spend are
// strictly below their budgets.
func (b *Brand) HasHeadroom() bool {
	return b.MonthlySpend.LessThan(b.MonthlyBudget) && b.DailySpend.LessThan(b.DailyBudget)
}

// Exhausted is the complement of HasHeadroom: a brand at exactly its budget
// is exhausted.
func (b *Brand) Exhausted() bool {
	return !b.HasHeadroom()
}

// ResetForPeriod zeroes the spend totals that belong to a period other than
// now's and moves the update marker to now. It reports whether anything was
// reset. A brand that was never rolled up keeps its monthly spend.
func (b *Brand) ResetForPeriod(now time.Time) bool {
	last := b.LastSpendUpdate
	if last != nil && DateOf(last.In(now.Location())) == DateOf(now) {
		return false
	}
	b.DailySpend = decimal.Zero
	if last != nil && YearMonthOf(last.In(now.Location())) != YearMonthOf(now) {
		b.MonthlySpend = decimal.Zero
	}
	b.LastSpendUpdate = &now
	return true
}

// Validate checks the fields the CRUD shell may set.
func (b *Brand) Validate() error {
	if b.DailyBudget.IsNegative() {
		return &ValidationError{Field: "daily_budget", Message: "must not be negative"}
	}
	if b.MonthlyBudget.IsNegative() {
		return &ValidationError{Field: "monthly_budget", Message: "must not be negative"}
	}
	return nil
}
