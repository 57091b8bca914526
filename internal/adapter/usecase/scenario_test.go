package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpacer/internal/adapter/memory"
	"adpacer/internal/clock"
	"adpacer/internal/core/domain"
)

type scenario struct {
	t      *testing.T
	ctx    context.Context
	store  *memory.Store
	clock  *clock.Fake
	engine *EngineUseCase
	brand  domain.Brand
	ad     domain.Ad
}

// newScenario seeds one brand (100/200) and one ad running from
// Jan 1 09:00 to Jan 2 17:00.
func newScenario(t *testing.T, start time.Time) *scenario {
	t.Helper()
	s := &scenario{
		t:     t,
		ctx:   context.Background(),
		store: memory.New(),
		clock: clock.NewFake(start),
	}
	s.engine = NewEngineUseCase(s.store, s.clock, discard)

	yesterday := start.AddDate(0, 0, -1)
	s.brand = domain.Brand{
		Name:            "Brand 1",
		DailyBudget:     dec(100),
		MonthlyBudget:   dec(200),
		LastSpendUpdate: &yesterday,
	}
	require.NoError(t, s.store.CreateBrand(s.ctx, &s.brand))
	s.ad = domain.Ad{BrandID: s.brand.ID, Name: "Ad 1", StartTime: jan(1, 9), EndTime: jan(2, 17)}
	require.NoError(t, s.store.CreateAd(s.ctx, &s.ad))
	return s
}

func (s *scenario) at(now time.Time) *scenario {
	s.clock.Set(now)
	return s
}

func (s *scenario) activate() {
	_, err := s.engine.RunAdActivation(s.ctx)
	require.NoError(s.t, err)
}

func (s *scenario) accrue() {
	_, err := s.engine.RunSpendAccrual(s.ctx)
	require.NoError(s.t, err)
}

func (s *scenario) rollup() {
	_, err := s.engine.RunBrandRollup(s.ctx)
	require.NoError(s.t, err)
}

func (s *scenario) getAd() *domain.Ad {
	ad, err := s.store.GetAd(s.ctx, s.ad.ID)
	require.NoError(s.t, err)
	return ad
}

func (s *scenario) getBrand() *domain.Brand {
	b, err := s.store.GetBrand(s.ctx, s.brand.ID)
	require.NoError(s.t, err)
	return b
}

func (s *scenario) assertSpend(daily, monthly int64) {
	s.t.Helper()
	b := s.getBrand()
	assert.True(s.t, b.DailySpend.Equal(dec(daily)), "daily spend %s, want %d", b.DailySpend, daily)
	assert.True(s.t, b.MonthlySpend.Equal(dec(monthly)), "monthly spend %s, want %d", b.MonthlySpend, monthly)
}

func TestScenarioActivation(t *testing.T) {
	s := newScenario(t, jan(1, 10))
	s.activate()

	ad := s.getAd()
	assert.True(t, ad.Active)
	require.NotNil(t, ad.LastActiveTime)
	assert.Equal(t, jan(1, 10), *ad.LastActiveTime)

	// A second pass keeps the first checkpoint.
	s.at(jan(1, 11)).activate()
	assert.Equal(t, jan(1, 10), *s.getAd().LastActiveTime)
}

func TestScenarioAccrual(t *testing.T) {
	s := newScenario(t, jan(1, 12))
	s.activate()

	s.at(jan(1, 14)).accrue()
	rows, err := s.store.ListAdSpend(s.ctx, s.ad.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.Date{Year: 2023, Month: time.January, Day: 1}, rows[0].Date)
	assert.True(t, rows[0].Spent.Equal(dec(2)))

	s.at(jan(2, 14)).accrue()
	rows, err = s.store.ListAdSpend(s.ctx, s.ad.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Spent.Equal(dec(2)), "yesterday untouched")
	assert.True(t, rows[1].Spent.Equal(dec(14)))
}

// TestScenarioRollupAcrossPeriods follows one ad across two days and into
// the next month.
func TestScenarioRollupAcrossPeriods(t *testing.T) {
	s := newScenario(t, jan(1, 12))
	s.activate()

	s.at(jan(1, 14))
	s.accrue()
	s.rollup()
	s.assertSpend(2, 2)

	s.at(jan(1, 16))
	s.accrue()
	s.rollup()
	s.assertSpend(4, 4)

	s.at(jan(2, 14))
	s.accrue()
	s.rollup()
	s.assertSpend(14, 18)

	s.at(time.Date(2023, time.February, 1, 10, 0, 0, 0, time.UTC))
	s.accrue()
	s.rollup()
	s.assertSpend(10, 10)
	assert.Equal(t, s.clock.Now(), *s.getBrand().LastSpendUpdate)
}

func TestScenarioRollupIdempotent(t *testing.T) {
	s := newScenario(t, jan(1, 12))
	s.activate()
	s.at(jan(1, 15)).accrue()

	s.rollup()
	first := s.getBrand()
	s.rollup()
	second := s.getBrand()

	assert.True(t, first.DailySpend.Equal(second.DailySpend))
	assert.True(t, first.MonthlySpend.Equal(second.MonthlySpend))
	s.assertSpend(3, 3)
}

// TestScenarioExhaustion ensures an exhausted brand loses its ads and that
// the next activation pass does not bring them back.
func TestScenarioExhaustion(t *testing.T) {
	s := newScenario(t, jan(1, 12))
	s.brand.DailyBudget = dec(3)
	require.NoError(t, s.store.UpdateBrand(s.ctx, &s.brand))
	s.activate()

	s.at(jan(1, 15))
	s.accrue()
	s.rollup()
	s.assertSpend(3, 3)
	assert.False(t, s.getAd().Active)

	s.activate()
	ad := s.getAd()
	assert.False(t, ad.Active)
	assert.Equal(t, jan(1, 12), *ad.LastActiveTime)

	// Next day the daily budget is fresh again.
	s.at(jan(2, 9))
	s.rollup()
	s.assertSpend(0, 3)
	s.activate()
	ad = s.getAd()
	assert.True(t, ad.Active)
	assert.Equal(t, jan(2, 9), *ad.LastActiveTime)
}

// TestScenarioClockLocation runs the routines with a UTC+3 clock across
// local midnight, which is still January 31 in UTC. Accrual restarts from
// local midnight and the rollup moves to the new local day and month.
func TestScenarioClockLocation(t *testing.T) {
	msk := time.FixedZone("UTC+3", 3*3600)
	local := func(month time.Month, day, hour, minute int) time.Time {
		return time.Date(2023, month, day, hour, minute, 0, 0, msk)
	}

	s := newScenario(t, local(time.January, 31, 21, 30))
	s.ad.StartTime = local(time.January, 31, 21, 0)
	s.ad.EndTime = local(time.February, 1, 9, 0)
	require.NoError(t, s.store.UpdateAd(s.ctx, &s.ad))
	s.activate()
	require.True(t, s.getAd().Active)

	s.at(local(time.January, 31, 23, 30))
	s.accrue()
	s.rollup()
	s.assertSpend(2, 2)

	// 23:00 UTC on January 31.
	s.at(local(time.February, 1, 2, 0))
	s.accrue()
	s.rollup()

	rows, err := s.store.ListAdSpend(s.ctx, s.ad.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.Date{Year: 2023, Month: time.January, Day: 31}, rows[0].Date)
	assert.True(t, rows[0].Spent.Equal(dec(2)))
	assert.Equal(t, domain.Date{Year: 2023, Month: time.February, Day: 1}, rows[1].Date)
	assert.True(t, rows[1].Spent.Equal(dec(2)), "accrues from local midnight")

	s.assertSpend(2, 2)
}

// TestScenarioConcurrentAccrual ensures overlapping accrual passes converge
// on the same value instead of adding up.
func TestScenarioConcurrentAccrual(t *testing.T) {
	s := newScenario(t, jan(1, 12))
	s.activate()
	s.at(jan(1, 17))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.engine.RunSpendAccrual(s.ctx)
		}()
	}
	wg.Wait()

	rows, err := s.store.ListAdSpend(s.ctx, s.ad.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Spent.Equal(dec(5)))
}

func TestScenarioCancelledPass(t *testing.T) {
	s := newScenario(t, jan(1, 12))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.engine.RunAdActivation(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.getAd().Active)
}
