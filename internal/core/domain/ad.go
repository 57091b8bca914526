package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ad is a schedulable unit of a brand. Active caches the last computed
// value of "now is inside the window and the brand has headroom";
// LastActiveTime is the accrual checkpoint stamped on every inactive to
// active transition.
type Ad struct {
	ID             int64      `json:"id"`
	BrandID        int64      `json:"brand_id"`
	Name           string     `json:"name"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	Active         bool       `json:"active"`
	LastActiveTime *time.Time `json:"last_active_time"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// InWindow reports whether start_time <= now <= end_time.
func (a *Ad) InWindow(now time.Time) bool {
	return !now.Before(a.StartTime) && !now.After(a.EndTime)
}

// Validate rejects windows that end before they start.
func (a *Ad) Validate() error {
	if a.EndTime.Before(a.StartTime) {
		return &ValidationError{Field: "end_time", Message: "must not be before start_time"}
	}
	return nil
}

// ProjectSpend projects the hours the ad's window occupies on each day up to
// now. Days follow now's location, the same calendar accrual keys AdSpend
// rows by. An ad that has not started yet has no buckets.
func (a *Ad) ProjectSpend(now time.Time) ([]DailyBucket, error) {
	loc := now.Location()
	end := a.EndTime
	if end.After(now) {
		end = now
	}
	if end.Before(a.StartTime) {
		return nil, nil
	}
	return SplitIntoDailyBuckets(a.StartTime.In(loc), end.In(loc))
}

// AdSpend is the cumulative number of hours an ad was active on Date.
type AdSpend struct {
	AdID      int64           `json:"ad_id"`
	Date      Date            `json:"date"`
	Spent     decimal.Decimal `json:"spent"`
	UpdatedAt time.Time       `json:"updated_at"`
}
