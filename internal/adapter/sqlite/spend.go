package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
)

func (s *Store) UpsertAdSpend(ctx context.Context, adID int64, date domain.Date, hours decimal.Decimal) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ad_spend (ad_id, date, spent, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (ad_id, date) DO UPDATE SET spent = excluded.spent, updated_at = excluded.updated_at`,
		adID, date.String(), hours.String(), nowText())
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

// sumSpend adds the brand's spend dated in [from, to) in Go, since SQLite
// would sum the text column as a float.
func (s *Store) sumSpend(ctx context.Context, op string, brandID int64, from, to domain.Date) (decimal.NullDecimal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.spent FROM ad_spend s JOIN ads a ON a.id = s.ad_id
		WHERE a.brand_id = ? AND s.date >= ? AND s.date < ?`,
		brandID, from.String(), to.String())
	if err != nil {
		return decimal.NullDecimal{}, wrapErr(op, err)
	}
	defer rows.Close()

	var sum decimal.NullDecimal
	for rows.Next() {
		var spent string
		if err = rows.Scan(&spent); err != nil {
			return decimal.NullDecimal{}, wrapErr(op, err)
		}
		d, err := decimal.NewFromString(spent)
		if err != nil {
			return decimal.NullDecimal{}, fmt.Errorf("%s: parse %q: %w", op, spent, err)
		}
		sum.Decimal = sum.Decimal.Add(d)
		sum.Valid = true
	}
	return sum, wrapErr(op, rows.Err())
}

func (s *Store) ListAdSpend(ctx context.Context, adID int64) ([]domain.AdSpend, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ad_id, date, spent, updated_at FROM ad_spend WHERE ad_id = ? ORDER BY date`, adID)
	if err != nil {
		return nil, wrapErr("list ad spend", err)
	}
	defer rows.Close()

	var out []domain.AdSpend
	for rows.Next() {
		var (
			rec                    domain.AdSpend
			date, spent, updatedAt string
		)
		if err = rows.Scan(&rec.AdID, &date, &spent, &updatedAt); err != nil {
			return nil, wrapErr("list ad spend", err)
		}
		if rec.Date, err = domain.ParseDate(date); err != nil {
			return nil, err
		}
		if rec.Spent, err = decimal.NewFromString(spent); err != nil {
			return nil, err
		}
		if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, wrapErr("list ad spend", rows.Err())
}

func (s *Store) GetSettings(ctx context.Context) (*domain.Settings, error) {
	var rate, updatedAt string
	err := s.db.QueryRowContext(ctx, `SELECT hourly_rate, updated_at FROM settings WHERE id = 1`).
		Scan(&rate, &updatedAt)
	if err = wrapErr("get settings", err); errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	st := &domain.Settings{}
	if st.HourlyRate, err = decimal.NewFromString(rate); err != nil {
		return nil, err
	}
	if st.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	now := nowText()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (id, hourly_rate, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET hourly_rate = excluded.hourly_rate, updated_at = excluded.updated_at`,
		settings.HourlyRate.String(), now)
	if err != nil {
		return wrapErr("save settings", err)
	}
	settings.UpdatedAt, err = parseTime(now)
	return err
}
