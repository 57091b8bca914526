package sqlite

import (
	"context"
	"database/sql"
	"time"

	"adpacer/internal/core/domain"
)

const adColumns = `id, brand_id, name, start_time, end_time, active, last_active_time, created_at, updated_at`

func scanAd(row scanner) (domain.Ad, error) {
	var (
		a                    domain.Ad
		start, end           string
		lastActive           sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(&a.ID, &a.BrandID, &a.Name, &start, &end, &a.Active, &lastActive,
		&createdAt, &updatedAt); err != nil {
		return a, err
	}
	var err error
	if a.StartTime, err = parseTime(start); err != nil {
		return a, err
	}
	if a.EndTime, err = parseTime(end); err != nil {
		return a, err
	}
	if a.LastActiveTime, err = parseNullTime(lastActive); err != nil {
		return a, err
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return a, err
	}
	a.UpdatedAt, err = parseTime(updatedAt)
	return a, err
}

func (s *Store) queryAds(ctx context.Context, op, where string, args ...any) ([]domain.Ad, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+adColumns+` FROM ads `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		ads = append(ads, a)
	}
	return ads, wrapErr(op, rows.Err())
}

func (s *Store) ListAds(ctx context.Context) ([]domain.Ad, error) {
	return s.queryAds(ctx, "list ads", "")
}

func (s *Store) ListActiveAds(ctx context.Context) ([]domain.Ad, error) {
	return s.queryAds(ctx, "list active ads", "WHERE active = 1")
}

func (s *Store) ListAdsByBrand(ctx context.Context, brandID int64) ([]domain.Ad, error) {
	return s.queryAds(ctx, "list brand ads", "WHERE brand_id = ?", brandID)
}

func (s *Store) GetAd(ctx context.Context, id int64) (*domain.Ad, error) {
	a, err := scanAd(s.db.QueryRowContext(ctx, `SELECT `+adColumns+` FROM ads WHERE id = ?`, id))
	if err != nil {
		return nil, wrapErr("get ad", err)
	}
	return &a, nil
}

func (s *Store) SaveAd(ctx context.Context, ad *domain.Ad) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE ads SET active = ?, last_active_time = ?, updated_at = ? WHERE id = ?`,
		ad.Active, formatNullTime(ad.LastActiveTime), nowText(), ad.ID)
	if err != nil {
		return wrapErr("save ad", err)
	}
	return affected("save ad", res)
}

func (s *Store) DeactivateBrandAds(ctx context.Context, brandID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE ads SET active = 0, updated_at = ? WHERE brand_id = ? AND active = 1`,
		nowText(), brandID)
	if err != nil {
		return 0, wrapErr("deactivate brand ads", err)
	}
	n, err := res.RowsAffected()
	return n, wrapErr("deactivate brand ads", err)
}

func (s *Store) CreateAd(ctx context.Context, ad *domain.Ad) error {
	now := time.Now().UTC().Truncate(time.Microsecond)
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO ads (brand_id, name, start_time, end_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ad.BrandID, ad.Name, formatTime(ad.StartTime), formatTime(ad.EndTime), formatTime(now), formatTime(now))
	if err != nil {
		return wrapErr("create ad", err)
	}
	if ad.ID, err = res.LastInsertId(); err != nil {
		return wrapErr("create ad", err)
	}
	ad.CreatedAt, ad.UpdatedAt = now, now
	return nil
}

func (s *Store) UpdateAd(ctx context.Context, ad *domain.Ad) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE ads SET brand_id = ?, name = ?, start_time = ?, end_time = ?, updated_at = ?
		WHERE id = ?`,
		ad.BrandID, ad.Name, formatTime(ad.StartTime), formatTime(ad.EndTime), nowText(), ad.ID)
	if err != nil {
		return wrapErr("update ad", err)
	}
	if err = affected("update ad", res); err != nil {
		return err
	}
	updated, err := s.GetAd(ctx, ad.ID)
	if err != nil {
		return err
	}
	*ad = *updated
	return nil
}

func (s *Store) DeleteAd(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ads WHERE id = ?`, id)
	if err != nil {
		return wrapErr("delete ad", err)
	}
	return affected("delete ad", res)
}
