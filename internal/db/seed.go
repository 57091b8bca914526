package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// SeedOptions sizes the demo data set.
type SeedOptions struct {
	Brands      int
	AdsPerBrand int
	// Seed feeds the random generator; zero uses the current time.
	Seed int64
}

// Seed inserts demo brands and ads through store. Ad windows are spread
// around now so that some ads are running, some finished and some not yet
// started.
func Seed(ctx context.Context, store port.CatalogStore, now time.Time, opts SeedOptions) error {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	for i := 1; i <= opts.Brands; i++ {
		daily := int64(8 + r.Intn(40))
		brand := &domain.Brand{
			Name:          fmt.Sprintf("Brand %d", i),
			DailyBudget:   decimal.NewFromInt(daily),
			MonthlyBudget: decimal.NewFromInt(daily * 20),
		}
		if err := store.CreateBrand(ctx, brand); err != nil {
			return fmt.Errorf("seed brand %d: %w", i, err)
		}

		for j := 1; j <= opts.AdsPerBrand; j++ {
			// start between two days ago and tomorrow, run 2 to 72 hours
			start := now.Truncate(time.Hour).Add(time.Duration(r.Intn(72)-48) * time.Hour)
			ad := &domain.Ad{
				BrandID:   brand.ID,
				Name:      fmt.Sprintf("Ad %d for brand %d", j, i),
				StartTime: start,
				EndTime:   start.Add(time.Duration(2+r.Intn(71)) * time.Hour),
			}
			if err := store.CreateAd(ctx, ad); err != nil {
				return fmt.Errorf("seed ad %d of brand %d: %w", j, i, err)
			}
		}
	}
	return nil
}
