package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// RunBrandRollup recomputes daily and monthly spend of every brand from the
// AdSpend rows and deactivates all ads of brands that reached a budget.
func (u *EngineUseCase) RunBrandRollup(ctx context.Context) (port.PassStats, error) {
	now := u.clock.Now()
	p := u.begin(port.RoutineRollup)

	brands, err := u.store.ListBrands(ctx)
	if err != nil {
		return p.aborted("list brands", err)
	}

	for i := range brands {
		if err = ctx.Err(); err != nil {
			return p.aborted("scan brands", err)
		}
		brand := &brands[i]
		p.stats.Scanned++

		if err = u.rollupBrand(ctx, p.logger, brand, now); err != nil {
			if abort := p.entityFailed("brand rollup failed", err, slog.Int64("brand_id", brand.ID)); abort != nil {
				return p.aborted("rollup brand", abort)
			}
			continue
		}
		p.stats.Changed++
	}
	return p.finish()
}

func (u *EngineUseCase) rollupBrand(ctx context.Context, logger *slog.Logger, brand *domain.Brand, now time.Time) error {
	if brand.ResetForPeriod(now) {
		if err := u.store.SaveBrand(ctx, brand); err != nil {
			return fmt.Errorf("save period reset: %w", err)
		}
		logger.Info("brand spend period rolled over", slog.Int64("brand_id", brand.ID))
	}

	today := domain.DateOf(now)
	daily, err := u.store.SumDailySpend(ctx, brand.ID, today)
	if err != nil {
		return fmt.Errorf("sum daily spend: %w", err)
	}
	monthly, err := u.store.SumMonthlySpend(ctx, brand.ID, today.YearMonth())
	if err != nil {
		return fmt.Errorf("sum monthly spend: %w", err)
	}

	brand.DailySpend = orZero(daily)
	brand.MonthlySpend = orZero(monthly)
	brand.LastSpendUpdate = &now
	if err = u.store.SaveBrand(ctx, brand); err != nil {
		return fmt.Errorf("save spend: %w", err)
	}

	if !brand.Exhausted() {
		return nil
	}
	n, err := u.store.DeactivateBrandAds(ctx, brand.ID)
	if err != nil {
		return fmt.Errorf("deactivate ads: %w", err)
	}
	if n > 0 {
		logger.Warn("brand budget exhausted, ads deactivated",
			slog.Int64("brand_id", brand.ID),
			slog.Int64("ads", n),
			slog.String("daily_spend", brand.DailySpend.String()),
			slog.String("daily_budget", brand.DailyBudget.String()),
			slog.String("monthly_spend", brand.MonthlySpend.String()),
			slog.String("monthly_budget", brand.MonthlyBudget.String()),
		)
	}
	return nil
}

// orZero maps a NULL aggregate to zero.
func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
