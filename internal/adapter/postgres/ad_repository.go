package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"adpacer/internal/core/domain"
)

const adColumns = `id, brand_id, name, start_time, end_time, active, last_active_time, created_at, updated_at`

func scanAd(row scanner) (domain.Ad, error) {
	var a domain.Ad
	err := row.Scan(&a.ID, &a.BrandID, &a.Name, &a.StartTime, &a.EndTime, &a.Active,
		&a.LastActiveTime, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (s *Store) queryAds(ctx context.Context, op, where string, args ...any) ([]domain.Ad, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+adColumns+` FROM ads `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	ads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		return scanAd(row)
	})
	return ads, wrapErr(op, err)
}

func (s *Store) ListAds(ctx context.Context) ([]domain.Ad, error) {
	return s.queryAds(ctx, "list ads", "")
}

func (s *Store) ListActiveAds(ctx context.Context) ([]domain.Ad, error) {
	return s.queryAds(ctx, "list active ads", "WHERE active")
}

func (s *Store) ListAdsByBrand(ctx context.Context, brandID int64) ([]domain.Ad, error) {
	return s.queryAds(ctx, "list brand ads", "WHERE brand_id = $1", brandID)
}

func (s *Store) GetAd(ctx context.Context, id int64) (*domain.Ad, error) {
	a, err := scanAd(s.pool.QueryRow(ctx, `SELECT `+adColumns+` FROM ads WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr("get ad", err)
	}
	return &a, nil
}

// SaveAd writes the active flag and the accrual checkpoint.
func (s *Store) SaveAd(ctx context.Context, ad *domain.Ad) error {
	tag, err := s.pool.Exec(ctx, `
        UPDATE ads SET active = $2, last_active_time = $3, updated_at = now()
        WHERE id = $1`,
		ad.ID, ad.Active, ad.LastActiveTime)
	if err != nil {
		return wrapErr("save ad", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeactivateBrandAds clears the active flag of every active ad of a brand
// in a single statement. last_active_time is left as is.
func (s *Store) DeactivateBrandAds(ctx context.Context, brandID int64) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
        UPDATE ads SET active = FALSE, updated_at = now()
        WHERE brand_id = $1 AND active`, brandID)
	if err != nil {
		return 0, wrapErr("deactivate brand ads", err)
	}
	return tag.RowsAffected(), nil
}

func (s *Store) CreateAd(ctx context.Context, ad *domain.Ad) error {
	err := s.pool.QueryRow(ctx, `
        INSERT INTO ads (brand_id, name, start_time, end_time)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`,
		ad.BrandID, ad.Name, ad.StartTime, ad.EndTime,
	).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
	return wrapErr("create ad", err)
}

func (s *Store) UpdateAd(ctx context.Context, ad *domain.Ad) error {
	a, err := scanAd(s.pool.QueryRow(ctx, `
        UPDATE ads SET brand_id = $2, name = $3, start_time = $4, end_time = $5, updated_at = now()
        WHERE id = $1
        RETURNING `+adColumns,
		ad.ID, ad.BrandID, ad.Name, ad.StartTime, ad.EndTime))
	if err != nil {
		return wrapErr("update ad", err)
	}
	*ad = a
	return nil
}

func (s *Store) DeleteAd(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete ad", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
