package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"adpacer/internal/core/domain"
)

const brandColumns = `id, name, daily_budget::text, monthly_budget::text, daily_spend::text,
       monthly_spend::text, last_spend_update, created_at, updated_at`

func scanBrand(row scanner) (domain.Brand, error) {
	var (
		b                          domain.Brand
		dailyBudget, monthlyBudget string
		dailySpend, monthlySpend   string
	)
	err := row.Scan(&b.ID, &b.Name, &dailyBudget, &monthlyBudget, &dailySpend, &monthlySpend,
		&b.LastSpendUpdate, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return b, err
	}
	if b.DailyBudget, err = parseDecimal("daily_budget", dailyBudget); err != nil {
		return b, err
	}
	if b.MonthlyBudget, err = parseDecimal("monthly_budget", monthlyBudget); err != nil {
		return b, err
	}
	if b.DailySpend, err = parseDecimal("daily_spend", dailySpend); err != nil {
		return b, err
	}
	b.MonthlySpend, err = parseDecimal("monthly_spend", monthlySpend)
	return b, err
}

// ListBrands returns every brand ordered by id.
func (s *Store) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+brandColumns+` FROM brands ORDER BY id`)
	if err != nil {
		return nil, wrapErr("list brands", err)
	}
	brands, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Brand, error) {
		return scanBrand(row)
	})
	return brands, wrapErr("list brands", err)
}

func (s *Store) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	b, err := scanBrand(s.pool.QueryRow(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr("get brand", err)
	}
	return &b, nil
}

// SaveBrand writes the spend totals computed by the rollup routine.
func (s *Store) SaveBrand(ctx context.Context, brand *domain.Brand) error {
	tag, err := s.pool.Exec(ctx, `
        UPDATE brands
        SET daily_spend = $2::numeric,
            monthly_spend = $3::numeric,
            last_spend_update = $4,
            updated_at = now()
        WHERE id = $1`,
		brand.ID, brand.DailySpend.String(), brand.MonthlySpend.String(), brand.LastSpendUpdate)
	if err != nil {
		return wrapErr("save brand", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) CreateBrand(ctx context.Context, brand *domain.Brand) error {
	err := s.pool.QueryRow(ctx, `
        INSERT INTO brands (name, daily_budget, monthly_budget)
        VALUES ($1, $2::numeric, $3::numeric)
        RETURNING id, created_at, updated_at`,
		brand.Name, brand.DailyBudget.String(), brand.MonthlyBudget.String(),
	).Scan(&brand.ID, &brand.CreatedAt, &brand.UpdatedAt)
	return wrapErr("create brand", err)
}

func (s *Store) UpdateBrand(ctx context.Context, brand *domain.Brand) error {
	b, err := scanBrand(s.pool.QueryRow(ctx, `
        UPDATE brands
        SET name = $2, daily_budget = $3::numeric, monthly_budget = $4::numeric, updated_at = now()
        WHERE id = $1
        RETURNING `+brandColumns,
		brand.ID, brand.Name, brand.DailyBudget.String(), brand.MonthlyBudget.String()))
	if err != nil {
		return wrapErr("update brand", err)
	}
	*brand = b
	return nil
}

// DeleteBrand removes the brand; ads and their spend go with it through
// ON DELETE CASCADE.
func (s *Store) DeleteBrand(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete brand", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
