// Package storetest holds the behaviour every port.Store adapter must share.
// Adapter packages call Run from their own tests.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// Factory returns an empty store. It is called once per subtest.
type Factory func(t *testing.T) port.Store

func Run(t *testing.T, newStore Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s port.Store)
	}{
		{"BrandCRUD", testBrandCRUD},
		{"AdCRUD", testAdCRUD},
		{"EngineFields", testEngineFields},
		{"UpsertOverwrites", testUpsertOverwrites},
		{"ConcurrentUpsert", testConcurrentUpsert},
		{"Sums", testSums},
		{"DeactivateBrandAds", testDeactivateBrandAds},
		{"CascadeDelete", testCascadeDelete},
		{"Settings", testSettings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

var ctx = context.Background()

func at(month time.Month, day, hour int) time.Time {
	return time.Date(2023, month, day, hour, 0, 0, 0, time.UTC)
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func date(month time.Month, day int) domain.Date {
	return domain.Date{Year: 2023, Month: month, Day: day}
}

func seedBrand(t *testing.T, s port.Store, name string) *domain.Brand {
	t.Helper()
	b := &domain.Brand{Name: name, DailyBudget: dec(100), MonthlyBudget: decimal.RequireFromString("200.50")}
	require.NoError(t, s.CreateBrand(ctx, b))
	require.NotZero(t, b.ID)
	return b
}

func seedAd(t *testing.T, s port.Store, brandID int64) *domain.Ad {
	t.Helper()
	a := &domain.Ad{BrandID: brandID, Name: "ad", StartTime: at(time.January, 1, 9), EndTime: at(time.January, 1, 17)}
	require.NoError(t, s.CreateAd(ctx, a))
	require.NotZero(t, a.ID)
	return a
}

func testBrandCRUD(t *testing.T, s port.Store) {
	b := seedBrand(t, s, "Brand 1")

	got, err := s.GetBrand(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brand 1", got.Name)
	assert.True(t, got.MonthlyBudget.Equal(decimal.RequireFromString("200.5")))
	assert.True(t, got.DailySpend.IsZero())
	assert.Nil(t, got.LastSpendUpdate)

	got.Name = "Renamed"
	got.DailyBudget = dec(5)
	require.NoError(t, s.UpdateBrand(ctx, got))
	got, err = s.GetBrand(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.True(t, got.DailyBudget.Equal(dec(5)))

	seedBrand(t, s, "Brand 2")
	all, err := s.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID)

	_, err = s.GetBrand(ctx, 424242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.DeleteBrand(ctx, 424242), domain.ErrNotFound)
}

func testAdCRUD(t *testing.T, s port.Store) {
	b := seedBrand(t, s, "b")
	a := seedAd(t, s, b.ID)

	got, err := s.GetAd(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.StartTime.Equal(a.StartTime))
	assert.True(t, got.EndTime.Equal(a.EndTime))
	assert.False(t, got.Active)
	assert.Nil(t, got.LastActiveTime)

	got.EndTime = at(time.January, 2, 17)
	got.Name = "renamed"
	require.NoError(t, s.UpdateAd(ctx, got))
	got, err = s.GetAd(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.True(t, got.EndTime.Equal(at(time.January, 2, 17)))

	err = s.CreateAd(ctx, &domain.Ad{BrandID: 424242, Name: "x", StartTime: a.StartTime, EndTime: a.EndTime})
	assert.ErrorIs(t, err, domain.ErrValidation)

	byBrand, err := s.ListAdsByBrand(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, byBrand, 1)

	require.NoError(t, s.DeleteAd(ctx, a.ID))
	_, err = s.GetAd(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testEngineFields(t *testing.T, s port.Store) {
	b := seedBrand(t, s, "b")
	a := seedAd(t, s, b.ID)

	checkpoint := at(time.January, 1, 10)
	a.Active = true
	a.LastActiveTime = &checkpoint
	a.Name = "ignored by SaveAd"
	require.NoError(t, s.SaveAd(ctx, a))

	active, err := s.ListActiveAds(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "ad", active[0].Name)
	require.NotNil(t, active[0].LastActiveTime)
	assert.True(t, active[0].LastActiveTime.Equal(checkpoint))

	updated := at(time.January, 1, 12)
	b.DailySpend = decimal.RequireFromString("3.25")
	b.MonthlySpend = dec(7)
	b.LastSpendUpdate = &updated
	require.NoError(t, s.SaveBrand(ctx, b))
	got, err := s.GetBrand(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.DailySpend.Equal(decimal.RequireFromString("3.25")))
	assert.True(t, got.MonthlySpend.Equal(dec(7)))
	require.NotNil(t, got.LastSpendUpdate)
	assert.True(t, got.LastSpendUpdate.Equal(updated))
}

func testUpsertOverwrites(t *testing.T, s port.Store) {
	b := seedBrand(t, s, "b")
	a := seedAd(t, s, b.ID)

	require.NoError(t, s.UpsertAdSpend(ctx, a.ID, date(time.January, 1), dec(2)))
	require.NoError(t, s.UpsertAdSpend(ctx, a.ID, date(time.January, 1), dec(4)))
	require.NoError(t, s.UpsertAdSpend(ctx, a.ID, date(time.January, 2), dec(1)))

	rows, err := s.ListAdSpend(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, date(time.January, 1), rows[0].Date)
	assert.True(t, rows[0].Spent.Equal(dec(4)), "upsert overwrites instead of adding")
	assert.Equal(t, date(time.January, 2), rows[1].Date)

	assert.ErrorIs(t, s.UpsertAdSpend(ctx, 424242, date(time.January, 1), dec(1)), domain.ErrNotFound)
}

func testConcurrentUpsert(t *testing.T, s port.Store) {
	b := seedBrand(t, s, "b")
	a := seedAd(t, s, b.ID)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.UpsertAdSpend(ctx, a.ID, date(time.January, 1), dec(5))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rows, err := s.ListAdSpend(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Spent.Equal(dec(5)))
}

func testSums(t *testing.T, s port.Store) {
	b := seedBrand(t, s, "b")
	other := seedBrand(t, s, "other")
	a1, a2 := seedAd(t, s, b.ID), seedAd(t, s, b.ID)
	foreign := seedAd(t, s, other.ID)

	sum, err := s.SumDailySpend(ctx, b.ID, date(time.January, 1))
	require.NoError(t, err)
	assert.False(t, sum.Valid, "no rows sums to NULL")

	require.NoError(t, s.UpsertAdSpend(ctx, a1.ID, date(time.January, 1), dec(2)))
	require.NoError(t, s.UpsertAdSpend(ctx, a2.ID, date(time.January, 1), dec(3)))
	require.NoError(t, s.UpsertAdSpend(ctx, a1.ID, date(time.January, 31), dec(10)))
	require.NoError(t, s.UpsertAdSpend(ctx, a1.ID, date(time.February, 1), dec(7)))
	require.NoError(t, s.UpsertAdSpend(ctx, foreign.ID, date(time.January, 1), dec(100)))

	sum, err = s.SumDailySpend(ctx, b.ID, date(time.January, 1))
	require.NoError(t, err)
	require.True(t, sum.Valid)
	assert.True(t, sum.Decimal.Equal(dec(5)))

	sum, err = s.SumMonthlySpend(ctx, b.ID, domain.YearMonth{Year: 2023, Month: time.January})
	require.NoError(t, err)
	require.True(t, sum.Valid)
	assert.True(t, sum.Decimal.Equal(dec(15)))

	sum, err = s.SumMonthlySpend(ctx, b.ID, domain.YearMonth{Year: 2022, Month: time.January})
	require.NoError(t, err)
	assert.False(t, sum.Valid, "same month of another year is not summed")
}

func testDeactivateBrandAds(t *testing.T, s port.Store) {
	b := seedBrand(t, s, "b")
	other := seedBrand(t, s, "other")
	checkpoint := at(time.January, 1, 9)
	for _, brandID := range []int64{b.ID, b.ID, other.ID} {
		a := seedAd(t, s, brandID)
		a.Active = true
		a.LastActiveTime = &checkpoint
		require.NoError(t, s.SaveAd(ctx, a))
	}

	n, err := s.DeactivateBrandAds(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	ads, err := s.ListAdsByBrand(ctx, b.ID)
	require.NoError(t, err)
	for _, a := range ads {
		assert.False(t, a.Active)
		require.NotNil(t, a.LastActiveTime, "checkpoint survives forced deactivation")
	}
	active, err := s.ListActiveAds(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	n, err = s.DeactivateBrandAds(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testCascadeDelete(t *testing.T, s port.Store) {
	b := seedBrand(t, s, "b")
	a := seedAd(t, s, b.ID)
	require.NoError(t, s.UpsertAdSpend(ctx, a.ID, date(time.January, 1), dec(2)))

	require.NoError(t, s.DeleteBrand(ctx, b.ID))
	_, err := s.GetAd(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	rows, err := s.ListAdSpend(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func testSettings(t *testing.T, s port.Store) {
	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.SaveSettings(ctx, &domain.Settings{HourlyRate: decimal.RequireFromString("12.50")}))
	require.NoError(t, s.SaveSettings(ctx, &domain.Settings{HourlyRate: decimal.RequireFromString("7.25")}))
	got, err = s.GetSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.HourlyRate.Equal(decimal.RequireFromString("7.25")))
}
