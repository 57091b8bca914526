package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// RunSpendAccrual writes today's spend for every active ad. The value is
// the full number of hours from the ad's checkpoint (or midnight, whichever
// is later) until now, so repeated passes overwrite rather than add.
func (u *EngineUseCase) RunSpendAccrual(ctx context.Context) (port.PassStats, error) {
	now := u.clock.Now()
	p := u.begin(port.RoutineAccrual)
	today, todayStart := domain.DateOf(now), domain.StartOfDay(now)

	ads, err := u.store.ListActiveAds(ctx)
	if err != nil {
		return p.aborted("list active ads", err)
	}

	for i := range ads {
		if err = ctx.Err(); err != nil {
			return p.aborted("scan ads", err)
		}
		ad := &ads[i]
		p.stats.Scanned++

		hours, err := accruedHours(ad, todayStart, now)
		if err != nil {
			p.stats.Failed++
			p.logger.Error("cannot accrue spend", slog.Int64("ad_id", ad.ID), slog.Any("error", err))
			continue
		}
		if err = u.store.UpsertAdSpend(ctx, ad.ID, today, decimal.NewFromInt(hours)); err != nil {
			if abort := p.entityFailed("upsert ad spend failed", err, slog.Int64("ad_id", ad.ID)); abort != nil {
				return p.aborted("upsert ad spend", abort)
			}
			continue
		}
		p.stats.Changed++
		p.logger.Debug("ad spend accrued",
			slog.Int64("ad_id", ad.ID), slog.String("date", today.String()), slog.Int64("hours", hours))
	}
	return p.finish()
}

// accruedHours returns the hours an active ad has spent today. Spans before
// todayStart belong to earlier days and were flushed by earlier passes.
func accruedHours(ad *domain.Ad, todayStart, now time.Time) (int64, error) {
	if ad.LastActiveTime == nil {
		return 0, &domain.IntegrityError{AdID: ad.ID, Reason: "active ad has no last_active_time"}
	}
	from := todayStart
	if ad.LastActiveTime.After(todayStart) {
		from = *ad.LastActiveTime
	}
	if now.Before(from) {
		return 0, &domain.IntegrityError{AdID: ad.ID, Reason: "last_active_time is in the future"}
	}
	return domain.CeilHours(now.Sub(from)), nil
}
