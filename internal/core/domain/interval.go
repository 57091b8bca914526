package domain

import "time"

// DailyBucket is the number of whole hours an interval occupies on one
// calendar day.
type DailyBucket struct {
	Date  Date  `json:"date"`
	Hours int64 `json:"hours"`
}

// CeilHours converts d to hours, rounding any fraction up. Zero and negative
// durations yield 0.
func CeilHours(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	hours := d / time.Hour
	if d%time.Hour != 0 {
		hours++
	}
	return int64(hours)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SplitIntoDailyBuckets splits [start, end] into per-day hour buckets using
// the calendar of start's location. The first and last buckets are partial
// days rounded up to the next hour; every day in between counts as 24 hours,
// also on days a DST shift makes shorter or longer. When end lands exactly on
// midnight the final bucket has zero hours.
func SplitIntoDailyBuckets(start, end time.Time) ([]DailyBucket, error) {
	if end.Before(start) {
		return nil, ErrInvalidInterval
	}
	end = end.In(start.Location())

	if DateOf(start) == DateOf(end) {
		return []DailyBucket{{Date: DateOf(start), Hours: CeilHours(end.Sub(start))}}, nil
	}

	lastDay := StartOfDay(end)
	next := StartOfDay(start).AddDate(0, 0, 1)
	buckets := []DailyBucket{{Date: DateOf(start), Hours: CeilHours(next.Sub(start))}}

	for day := DateOf(next); day.Before(DateOf(lastDay)); day = day.AddDays(1) {
		buckets = append(buckets, DailyBucket{Date: day, Hours: 24})
	}

	return append(buckets, DailyBucket{Date: DateOf(end), Hours: CeilHours(end.Sub(lastDay))}), nil
}
