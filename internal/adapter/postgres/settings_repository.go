package postgres

import (
	"context"
	"errors"

	"adpacer/internal/core/domain"
)

// GetSettings returns nil when the singleton row was never written.
func (s *Store) GetSettings(ctx context.Context) (*domain.Settings, error) {
	var (
		st   domain.Settings
		rate string
	)
	err := s.pool.QueryRow(ctx, `SELECT hourly_rate::text, updated_at FROM settings WHERE id = 1`).
		Scan(&rate, &st.UpdatedAt)
	if err = wrapErr("get settings", err); errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if st.HourlyRate, err = parseDecimal("hourly_rate", rate); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	err := s.pool.QueryRow(ctx, `
        INSERT INTO settings (id, hourly_rate, updated_at) VALUES (1, $1::numeric, now())
        ON CONFLICT (id) DO UPDATE SET hourly_rate = EXCLUDED.hourly_rate, updated_at = now()
        RETURNING updated_at`,
		settings.HourlyRate.String(),
	).Scan(&settings.UpdatedAt)
	return wrapErr("save settings", err)
}
