package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpacer/internal/adapter/memory"
	"adpacer/internal/clock"
	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

func ptr[T any](v T) *T { return &v }

type catalogFixture struct {
	ctx     context.Context
	store   *memory.Store
	catalog *CatalogUseCase
	brand   *domain.Brand
}

// newCatalogFixture creates a brand with two ads starting Jan 1 09:00, one
// ending at end1 and the other at end2.
func newCatalogFixture(t *testing.T, end1, end2 time.Time) *catalogFixture {
	t.Helper()
	f := &catalogFixture{ctx: context.Background(), store: memory.New()}
	f.catalog = NewCatalogUseCase(f.store,
		clock.NewFake(time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)), decimal.NewFromInt(2), discard)

	var err error
	f.brand, err = f.catalog.CreateBrand(f.ctx, port.BrandInput{
		Name:          "Brand 1",
		DailyBudget:   ptr(dec(100)),
		MonthlyBudget: ptr(dec(200)),
	})
	require.NoError(t, err)

	for i, end := range []time.Time{end1, end2} {
		_, err = f.catalog.CreateAd(f.ctx, port.AdInput{
			BrandID:   f.brand.ID,
			Name:      []string{"Ad 1", "Ad 2"}[i],
			StartTime: ptr(jan(1, 9)),
			EndTime:   ptr(end),
		})
		require.NoError(t, err)
	}
	return f
}

func hoursOf(lines []port.SpendLine) map[string]int64 {
	out := make(map[string]int64, len(lines))
	for _, l := range lines {
		out[l.Period] = l.Hours
	}
	return out
}

func TestBrandDailySpend(t *testing.T) {
	f := newCatalogFixture(t, jan(3, 12), jan(3, 8))

	lines, err := f.catalog.BrandDailySpend(f.ctx, f.brand.ID)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"2023-01-01", "2023-01-02", "2023-01-03"},
		[]string{lines[0].Period, lines[1].Period, lines[2].Period})
	assert.Equal(t, map[string]int64{"2023-01-01": 30, "2023-01-02": 48, "2023-01-03": 20}, hoursOf(lines))
	assert.True(t, lines[0].Cost.Equal(dec(60)), "cost is hours times rate")

	day, err := f.catalog.BrandSpendOn(f.ctx, f.brand.ID, domain.Date{Year: 2023, Month: time.January, Day: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(48), day.Hours)

	none, err := f.catalog.BrandSpendOn(f.ctx, f.brand.ID, domain.Date{Year: 2023, Month: time.January, Day: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(0), none.Hours)
	assert.True(t, none.Cost.IsZero())
}

func TestBrandMonthlySpend(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2023, time.February, 3, 9, 0, 0, 0, time.UTC), jan(3, 8))

	lines, err := f.catalog.BrandMonthlySpend(f.ctx, f.brand.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "2023-01", lines[0].Period)
	assert.Equal(t, map[string]int64{"2023-01": 782, "2023-02": 57}, hoursOf(lines))

	feb, err := f.catalog.BrandSpendIn(f.ctx, f.brand.ID, domain.YearMonth{Year: 2023, Month: time.February})
	require.NoError(t, err)
	assert.Equal(t, int64(57), feb.Hours)

	mar, err := f.catalog.BrandSpendIn(f.ctx, f.brand.ID, domain.YearMonth{Year: 2023, Month: time.March})
	require.NoError(t, err)
	assert.Equal(t, int64(0), mar.Hours)
}

// TestAdSpendProjectionCappedAtNow ensures a running ad is projected only up
// to the current instant.
func TestAdSpendProjectionCappedAtNow(t *testing.T) {
	store := memory.New()
	fake := clock.NewFake(jan(1, 11))
	catalog := NewCatalogUseCase(store, fake, decimal.NewFromInt(1), discard)
	ctx := context.Background()

	brand, err := catalog.CreateBrand(ctx, port.BrandInput{Name: "b", DailyBudget: ptr(dec(1)), MonthlyBudget: ptr(dec(1))})
	require.NoError(t, err)
	ad, err := catalog.CreateAd(ctx, port.AdInput{
		BrandID: brand.ID, Name: "a", StartTime: ptr(jan(1, 9)), EndTime: ptr(jan(1, 17)),
	})
	require.NoError(t, err)

	lines, err := catalog.AdSpendProjection(ctx, ad.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Hours)

	fake.Set(jan(1, 8))
	lines, err = catalog.AdSpendProjection(ctx, ad.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCatalogValidation(t *testing.T) {
	f := newCatalogFixture(t, jan(1, 17), jan(1, 17))

	_, err := f.catalog.CreateBrand(f.ctx, port.BrandInput{Name: "", DailyBudget: ptr(dec(1)), MonthlyBudget: ptr(dec(1))})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = f.catalog.CreateBrand(f.ctx, port.BrandInput{Name: "x", MonthlyBudget: ptr(dec(1))})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "daily_budget", verr.Field)

	_, err = f.catalog.CreateBrand(f.ctx, port.BrandInput{Name: "x", DailyBudget: ptr(dec(-1)), MonthlyBudget: ptr(dec(1))})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.catalog.CreateAd(f.ctx, port.AdInput{
		BrandID: f.brand.ID, Name: "a", StartTime: ptr(jan(2, 0)), EndTime: ptr(jan(1, 0)),
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "end_time", verr.Field)

	_, err = f.catalog.CreateAd(f.ctx, port.AdInput{
		BrandID: 999, Name: "a", StartTime: ptr(jan(1, 0)), EndTime: ptr(jan(2, 0)),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.catalog.UpdateSettings(f.ctx, port.SettingsInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogBrandLifecycle(t *testing.T) {
	f := newCatalogFixture(t, jan(1, 17), jan(1, 18))

	detail, err := f.catalog.GetBrand(f.ctx, f.brand.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Ads, 2)

	updated, err := f.catalog.UpdateBrand(f.ctx, f.brand.ID, port.BrandInput{
		Name: "Renamed", DailyBudget: ptr(dec(5)), MonthlyBudget: ptr(dec(50)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.DailyBudget.Equal(dec(5)))

	require.NoError(t, f.catalog.DeleteBrand(f.ctx, f.brand.ID))
	_, err = f.catalog.GetBrand(f.ctx, f.brand.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	ads, err := f.catalog.ListAds(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, ads, "ads are deleted with their brand")
}

func TestCatalogSettings(t *testing.T) {
	f := newCatalogFixture(t, jan(1, 10), jan(1, 10))

	s, err := f.catalog.GetSettings(f.ctx)
	require.NoError(t, err)
	assert.True(t, s.HourlyRate.Equal(dec(2)), "default rate before any save")

	_, err = f.catalog.UpdateSettings(f.ctx, port.SettingsInput{HourlyRate: ptr(decimal.RequireFromString("1.5"))})
	require.NoError(t, err)

	day, err := f.catalog.BrandSpendOn(f.ctx, f.brand.ID, domain.Date{Year: 2023, Month: time.January, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), day.Hours)
	assert.True(t, day.Cost.Equal(dec(3)))
}
