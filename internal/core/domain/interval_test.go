package domain

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2023, month, day, hour, minute, 0, 0, time.UTC)
}

func TestCeilHours(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want int64
	}{
		{0, 0},
		{-time.Minute, 0},
		{time.Nanosecond, 1},
		{time.Hour, 1},
		{time.Hour + time.Second, 2},
		{14*time.Hour + 59*time.Minute, 15},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CeilHours(c.in), "CeilHours(%s)", c.in)
	}
}

// TestSplitSameDay ensures an interval within one day yields a single bucket.
func TestSplitSameDay(t *testing.T) {
	buckets, err := SplitIntoDailyBuckets(at(time.January, 1, 9, 0), at(time.January, 1, 17, 0))
	require.NoError(t, err)
	assert.Equal(t, []DailyBucket{{Date: Date{2023, time.January, 1}, Hours: 8}}, buckets)

	buckets, err = SplitIntoDailyBuckets(at(time.January, 1, 9, 0), at(time.January, 1, 9, 0))
	require.NoError(t, err)
	assert.Equal(t, []DailyBucket{{Date: Date{2023, time.January, 1}, Hours: 0}}, buckets)

	buckets, err = SplitIntoDailyBuckets(at(time.January, 1, 9, 0), at(time.January, 1, 9, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), buckets[0].Hours)
}

func TestSplitManyDays(t *testing.T) {
	buckets, err := SplitIntoDailyBuckets(at(time.January, 1, 9, 0), at(time.January, 3, 12, 0))
	require.NoError(t, err)
	assert.Equal(t, []DailyBucket{
		{Date: Date{2023, time.January, 1}, Hours: 15},
		{Date: Date{2023, time.January, 2}, Hours: 24},
		{Date: Date{2023, time.January, 3}, Hours: 12},
	}, buckets)
}

func TestSplitEndsAtMidnight(t *testing.T) {
	buckets, err := SplitIntoDailyBuckets(at(time.January, 1, 9, 0), at(time.January, 3, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []DailyBucket{
		{Date: Date{2023, time.January, 1}, Hours: 15},
		{Date: Date{2023, time.January, 2}, Hours: 24},
		{Date: Date{2023, time.January, 3}, Hours: 0},
	}, buckets)
}

func TestSplitAcrossMonths(t *testing.T) {
	buckets, err := SplitIntoDailyBuckets(at(time.January, 1, 9, 0), at(time.February, 3, 9, 0))
	require.NoError(t, err)
	require.Len(t, buckets, 34)

	var jan, feb int64
	for _, b := range buckets {
		switch b.Date.Month {
		case time.January:
			jan += b.Hours
		case time.February:
			feb += b.Hours
		}
	}
	assert.Equal(t, int64(15+30*24), jan)
	assert.Equal(t, int64(24+24+9), feb)
}

func TestSplitPartialFirstHour(t *testing.T) {
	buckets, err := SplitIntoDailyBuckets(at(time.January, 1, 23, 30), at(time.January, 2, 0, 30))
	require.NoError(t, err)
	assert.Equal(t, []DailyBucket{
		{Date: Date{2023, time.January, 1}, Hours: 1},
		{Date: Date{2023, time.January, 2}, Hours: 1},
	}, buckets)
}

func TestSplitUsesStartLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	start := time.Date(2023, time.January, 1, 22, 0, 0, 0, loc)
	// 2023-01-02 01:00 in UTC+3.
	end := time.Date(2023, time.January, 1, 22, 0, 0, 0, time.UTC)

	buckets, err := SplitIntoDailyBuckets(start, end)
	require.NoError(t, err)
	assert.Equal(t, []DailyBucket{
		{Date: Date{2023, time.January, 1}, Hours: 2},
		{Date: Date{2023, time.January, 2}, Hours: 1},
	}, buckets)
}

// TestSplitDSTFullDays checks that fully contained days count as 24 hours
// on both DST transition days while the partial ends use elapsed time.
func TestSplitDSTFullDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	buckets, err := SplitIntoDailyBuckets(
		time.Date(2023, time.March, 11, 9, 0, 0, 0, ny),
		time.Date(2023, time.March, 13, 12, 0, 0, 0, ny))
	require.NoError(t, err)
	assert.Equal(t, []DailyBucket{
		{Date: Date{2023, time.March, 11}, Hours: 15},
		{Date: Date{2023, time.March, 12}, Hours: 24},
		{Date: Date{2023, time.March, 13}, Hours: 12},
	}, buckets)

	buckets, err = SplitIntoDailyBuckets(
		time.Date(2023, time.November, 4, 9, 0, 0, 0, ny),
		time.Date(2023, time.November, 6, 12, 0, 0, 0, ny))
	require.NoError(t, err)
	assert.Equal(t, []DailyBucket{
		{Date: Date{2023, time.November, 4}, Hours: 15},
		{Date: Date{2023, time.November, 5}, Hours: 24},
		{Date: Date{2023, time.November, 6}, Hours: 12},
	}, buckets)
}

func TestSplitRejectsReversedInterval(t *testing.T) {
	_, err := SplitIntoDailyBuckets(at(time.January, 2, 0, 0), at(time.January, 1, 0, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

// TestSplitSameDayProperty checks that any same-day interval produces one
// bucket holding the rounded-up hours.
func TestSplitSameDayProperty(t *testing.T) {
	start := at(time.March, 5, 0, 0)
	for minutes := 0; minutes < 24*60; minutes += 7 {
		end := start.Add(time.Duration(minutes) * time.Minute)
		buckets, err := SplitIntoDailyBuckets(start, end)
		require.NoError(t, err)
		require.Len(t, buckets, 1)
		assert.Equal(t, CeilHours(end.Sub(start)), buckets[0].Hours)
	}
}
