package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newBrand(daily, monthly, dailySpend, monthlySpend int64) Brand {
	return Brand{
		DailyBudget:   decimal.NewFromInt(daily),
		MonthlyBudget: decimal.NewFromInt(monthly),
		DailySpend:    decimal.NewFromInt(dailySpend),
		MonthlySpend:  decimal.NewFromInt(monthlySpend),
	}
}

func TestBrandHeadroom(t *testing.T) {
	b := newBrand(100, 200, 0, 0)
	assert.True(t, b.HasHeadroom())

	b = newBrand(100, 200, 120, 120)
	assert.False(t, b.HasHeadroom())
	assert.True(t, b.Exhausted())

	// exactly at budget counts as exhausted
	b = newBrand(100, 200, 100, 100)
	assert.True(t, b.Exhausted())

	b = newBrand(100, 200, 10, 200)
	assert.True(t, b.Exhausted())
}

func TestBrandResetForPeriod(t *testing.T) {
	now := time.Date(2023, time.January, 2, 14, 0, 0, 0, time.UTC)

	// never rolled up: daily reset only
	b := newBrand(100, 200, 5, 18)
	assert.True(t, b.ResetForPeriod(now))
	assert.True(t, b.DailySpend.IsZero())
	assert.Equal(t, "18", b.MonthlySpend.String())
	assert.Equal(t, now, *b.LastSpendUpdate)

	// same day, different instant: nothing to reset
	earlier := now.Add(-time.Hour)
	b = newBrand(100, 200, 5, 18)
	b.LastSpendUpdate = &earlier
	assert.False(t, b.ResetForPeriod(now))
	assert.Equal(t, "5", b.DailySpend.String())

	// previous day, same month
	yesterday := now.AddDate(0, 0, -1)
	b = newBrand(100, 200, 5, 18)
	b.LastSpendUpdate = &yesterday
	assert.True(t, b.ResetForPeriod(now))
	assert.True(t, b.DailySpend.IsZero())
	assert.Equal(t, "18", b.MonthlySpend.String())

	// previous month
	lastMonth := time.Date(2022, time.December, 31, 23, 0, 0, 0, time.UTC)
	b = newBrand(100, 200, 5, 18)
	b.LastSpendUpdate = &lastMonth
	assert.True(t, b.ResetForPeriod(now))
	assert.True(t, b.MonthlySpend.IsZero())

	// same month number, different year
	lastYear := time.Date(2022, time.January, 2, 14, 0, 0, 0, time.UTC)
	b = newBrand(100, 200, 5, 18)
	b.LastSpendUpdate = &lastYear
	assert.True(t, b.ResetForPeriod(now))
	assert.True(t, b.MonthlySpend.IsZero())
}

func TestAdProjectSpend(t *testing.T) {
	ad := Ad{StartTime: at(time.January, 1, 9, 0), EndTime: at(time.January, 3, 8, 0)}

	buckets, err := ad.ProjectSpend(at(time.June, 1, 0, 0))
	assert.NoError(t, err)
	assert.Equal(t, []DailyBucket{
		{Date: Date{2023, time.January, 1}, Hours: 15},
		{Date: Date{2023, time.January, 2}, Hours: 24},
		{Date: Date{2023, time.January, 3}, Hours: 8},
	}, buckets)

	// window still open: capped at now
	now := at(time.January, 3, 12, 0)
	ad = Ad{StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(2 * time.Hour)}
	buckets, err = ad.ProjectSpend(now)
	assert.NoError(t, err)
	assert.Equal(t, []DailyBucket{{Date: Date{2023, time.January, 3}, Hours: 2}}, buckets)

	// not started
	buckets, err = ad.ProjectSpend(now.Add(-3 * time.Hour))
	assert.NoError(t, err)
	assert.Empty(t, buckets)
}

// TestAdProjectSpendUsesNowLocation stores the window in UTC and projects
// it with a UTC+3 clock: the days follow the clock, not the stored zone.
func TestAdProjectSpendUsesNowLocation(t *testing.T) {
	msk := time.FixedZone("UTC+3", 3*3600)
	// 2023-01-01 23:00 to 2023-01-02 03:00 in UTC+3.
	ad := Ad{StartTime: at(time.January, 1, 20, 0), EndTime: at(time.January, 2, 0, 0)}

	buckets, err := ad.ProjectSpend(time.Date(2023, time.February, 1, 0, 0, 0, 0, msk))
	assert.NoError(t, err)
	assert.Equal(t, []DailyBucket{
		{Date: Date{2023, time.January, 1}, Hours: 1},
		{Date: Date{2023, time.January, 2}, Hours: 3},
	}, buckets)
}

func TestAdValidate(t *testing.T) {
	ad := Ad{StartTime: at(time.January, 2, 0, 0), EndTime: at(time.January, 1, 0, 0)}
	assert.ErrorIs(t, ad.Validate(), ErrValidation)

	ad.EndTime = ad.StartTime
	assert.NoError(t, ad.Validate())
}

func TestDateHelpers(t *testing.T) {
	d, err := ParseDate("2023-12-31")
	assert.NoError(t, err)
	assert.Equal(t, Date{2024, time.January, 1}, d.AddDays(1))
	assert.Equal(t, YearMonth{2024, time.January}, d.YearMonth().Next())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.Equal(t, "2023-12", d.YearMonth().String())

	ym, err := ParseYearMonth("2023-02")
	assert.NoError(t, err)
	assert.True(t, ym.Contains(Date{2023, time.February, 28}))
	assert.False(t, ym.Contains(Date{2023, time.March, 1}))
}
