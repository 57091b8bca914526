package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
)

// UpsertAdSpend sets the hours of (ad, date). The unique constraint on
// (ad_id, date) makes concurrent writers converge on one row.
func (s *Store) UpsertAdSpend(ctx context.Context, adID int64, date domain.Date, hours decimal.Decimal) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO ad_spend (ad_id, date, spent, updated_at)
        VALUES ($1, $2::date, $3::numeric, now())
        ON CONFLICT (ad_id, date) DO UPDATE
        SET spent = EXCLUDED.spent, updated_at = EXCLUDED.updated_at`,
		adID, date.String(), hours.String())
	if err = wrapErr("upsert ad spend", err); errors.Is(err, domain.ErrValidation) {
		return fmt.Errorf("ad %d: %w", adID, domain.ErrNotFound)
	}
	return err
}

func (s *Store) SumDailySpend(ctx context.Context, brandID int64, date domain.Date) (decimal.NullDecimal, error) {
	return s.sumSpend(ctx, "sum daily spend", brandID, date, date.AddDays(1))
}

func (s *Store) SumMonthlySpend(ctx context.Context, brandID int64, month domain.YearMonth) (decimal.NullDecimal, error) {
	return s.sumSpend(ctx, "sum monthly spend", brandID, month.FirstDay(), month.Next().FirstDay())
}

// sumSpend sums the brand's spend dated in [from, to). SUM over no rows is
// NULL and is returned as an invalid NullDecimal.
func (s *Store) sumSpend(ctx context.Context, op string, brandID int64, from, to domain.Date) (decimal.NullDecimal, error) {
	var sum *string
	err := s.pool.QueryRow(ctx, `
        SELECT SUM(s.spent)::text
        FROM ad_spend s
        JOIN ads a ON a.id = s.ad_id
        WHERE a.brand_id = $1 AND s.date >= $2::date AND s.date < $3::date`,
		brandID, from.String(), to.String(),
	).Scan(&sum)
	if err != nil {
		return decimal.NullDecimal{}, wrapErr(op, err)
	}
	return parseNullDecimal("spent", sum)
}

func (s *Store) ListAdSpend(ctx context.Context, adID int64) ([]domain.AdSpend, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT ad_id, to_char(date, 'YYYY-MM-DD'), spent::text, updated_at
        FROM ad_spend WHERE ad_id = $1 ORDER BY date`, adID)
	if err != nil {
		return nil, wrapErr("list ad spend", err)
	}
	spend, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdSpend, error) {
		var (
			rec         domain.AdSpend
			date, spent string
		)
		if err := row.Scan(&rec.AdID, &date, &spent, &rec.UpdatedAt); err != nil {
			return rec, err
		}
		var err error
		if rec.Date, err = domain.ParseDate(date); err != nil {
			return rec, err
		}
		rec.Spent, err = parseDecimal("spent", spent)
		return rec, err
	})
	return spend, wrapErr("list ad spend", err)
}
