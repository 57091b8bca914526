package usecase

import (
	"context"
	"log/slog"
	"time"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// RunAdActivation recomputes the active flag of every ad. Brands are read
// once at the start of the pass and every ad is judged against that
// snapshot. Only ads whose flag changed are written back.
func (u *EngineUseCase) RunAdActivation(ctx context.Context) (port.PassStats, error) {
	now := u.clock.Now()
	p := u.begin(port.RoutineActivation)

	brands, err := u.store.ListBrands(ctx)
	if err != nil {
		return p.aborted("list brands", err)
	}
	byID := make(map[int64]*domain.Brand, len(brands))
	for i := range brands {
		byID[brands[i].ID] = &brands[i]
	}

	ads, err := u.store.ListAds(ctx)
	if err != nil {
		return p.aborted("list ads", err)
	}

	for i := range ads {
		if err = ctx.Err(); err != nil {
			return p.aborted("scan ads", err)
		}
		ad := &ads[i]
		p.stats.Scanned++

		brand, ok := byID[ad.BrandID]
		if !ok {
			p.stats.Failed++
			p.logger.Error("ad references unknown brand",
				slog.Int64("ad_id", ad.ID), slog.Int64("brand_id", ad.BrandID))
			continue
		}
		if !applyActivation(p.logger, ad, brand, now) {
			continue
		}
		if err = u.store.SaveAd(ctx, ad); err != nil {
			if abort := p.entityFailed("save ad failed", err, slog.Int64("ad_id", ad.ID)); abort != nil {
				return p.aborted("save ad", abort)
			}
			continue
		}
		p.stats.Changed++
	}
	return p.finish()
}

// applyActivation sets ad.Active to (now in window) AND (brand has
// headroom) and reports whether the flag changed. The checkpoint is stamped
// only on an inactive to active transition and is never cleared.
func applyActivation(logger *slog.Logger, ad *domain.Ad, brand *domain.Brand, now time.Time) bool {
	wasActive := ad.Active

	switch {
	case !ad.InWindow(now):
		ad.Active = false
		if wasActive {
			logger.Info("ad deactivated", slog.Int64("ad_id", ad.ID), slog.String("reason", "outside window"))
		}
	case brand.HasHeadroom():
		ad.Active = true
		if !wasActive {
			ad.LastActiveTime = &now
			logger.Info("ad activated", slog.Int64("ad_id", ad.ID), slog.Time("last_active_time", now))
		}
	default:
		ad.Active = false
		logger.Info("ad held inactive, brand budget exceeded",
			slog.Int64("ad_id", ad.ID),
			slog.Int64("brand_id", brand.ID),
			slog.String("daily_spend", brand.DailySpend.String()),
			slog.String("daily_budget", brand.DailyBudget.String()),
			slog.String("monthly_spend", brand.MonthlySpend.String()),
			slog.String("monthly_budget", brand.MonthlyBudget.String()),
		)
	}
	return ad.Active != wasActive
}
