// Package sqlite provides a SQLite-backed port.Store for single-node
// deployments and local development.
//
// Timestamps are stored as fixed-width UTC text so that string comparison
// orders them chronologically; decimals are stored as text and summed in
// Go. The schema is created on New.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

var _ port.Store = (*Store)(nil)

const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store implements port.Store on database/sql with the go-sqlite3 driver.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path. Use ":memory:" for a
// throwaway database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection serialises writers and keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err = store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS brands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		daily_budget TEXT NOT NULL,
		monthly_budget TEXT NOT NULL,
		daily_spend TEXT NOT NULL DEFAULT '0',
		monthly_spend TEXT NOT NULL DEFAULT '0',
		last_spend_update TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		brand_id INTEGER NOT NULL REFERENCES brands(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 0,
		last_active_time TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		CHECK (end_time >= start_time)
	);

	CREATE INDEX IF NOT EXISTS idx_ads_brand ON ads(brand_id);

	CREATE TABLE IF NOT EXISTS ad_spend (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ad_id INTEGER NOT NULL REFERENCES ads(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		spent TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE (ad_id, date)
	);

	CREATE INDEX IF NOT EXISTS idx_ad_spend_date ON ad_spend(date);

	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		hourly_rate TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nowText() string {
	return formatTime(time.Now())
}

// wrapErr maps driver errors onto domain errors. A locked or busy database
// after the busy timeout counts as unavailable.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var sqlErr sqlite3.Error
	if errors.As(err, &sqlErr) {
		switch {
		case sqlErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
			return &domain.ValidationError{Field: "brand_id", Message: "unknown brand"}
		case sqlErr.ExtendedCode == sqlite3.ErrConstraintCheck:
			return &domain.ValidationError{Field: "end_time", Message: "must not be before start_time"}
		case sqlErr.Code == sqlite3.ErrBusy || sqlErr.Code == sqlite3.ErrLocked:
			return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
		}
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func affected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(op, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const brandColumns = `id, name, daily_budget, monthly_budget, daily_spend, monthly_spend,
	last_spend_update, created_at, updated_at`

func scanBrand(row scanner) (domain.Brand, error) {
	var (
		b                                          domain.Brand
		dailyBudget, monthlyBudget, daily, monthly string
		lastUpdate                                 sql.NullString
		createdAt, updatedAt                       string
	)
	if err := row.Scan(&b.ID, &b.Name, &dailyBudget, &monthlyBudget, &daily, &monthly,
		&lastUpdate, &createdAt, &updatedAt); err != nil {
		return b, err
	}
	var err error
	for _, f := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&b.DailyBudget, dailyBudget},
		{&b.MonthlyBudget, monthlyBudget},
		{&b.DailySpend, daily},
		{&b.MonthlySpend, monthly},
	} {
		if *f.dst, err = decimal.NewFromString(f.src); err != nil {
			return b, fmt.Errorf("brand %d: %w", b.ID, err)
		}
	}
	if b.LastSpendUpdate, err = parseNullTime(lastUpdate); err != nil {
		return b, err
	}
	if b.CreatedAt, err = parseTime(createdAt); err != nil {
		return b, err
	}
	b.UpdatedAt, err = parseTime(updatedAt)
	return b, err
}

func (s *Store) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+brandColumns+` FROM brands ORDER BY id`)
	if err != nil {
		return nil, wrapErr("list brands", err)
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, wrapErr("list brands", err)
		}
		brands = append(brands, b)
	}
	return brands, wrapErr("list brands", rows.Err())
}

func (s *Store) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	b, err := scanBrand(s.db.QueryRowContext(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = ?`, id))
	if err != nil {
		return nil, wrapErr("get brand", err)
	}
	return &b, nil
}

func (s *Store) SaveBrand(ctx context.Context, brand *domain.Brand) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE brands SET daily_spend = ?, monthly_spend = ?, last_spend_update = ?, updated_at = ?
		WHERE id = ?`,
		brand.DailySpend.String(), brand.MonthlySpend.String(), formatNullTime(brand.LastSpendUpdate),
		nowText(), brand.ID)
	if err != nil {
		return wrapErr("save brand", err)
	}
	return affected("save brand", res)
}

func (s *Store) CreateBrand(ctx context.Context, brand *domain.Brand) error {
	now := time.Now().UTC().Truncate(time.Microsecond)
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO brands (name, daily_budget, monthly_budget, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		brand.Name, brand.DailyBudget.String(), brand.MonthlyBudget.String(), formatTime(now), formatTime(now))
	if err != nil {
		return wrapErr("create brand", err)
	}
	if brand.ID, err = res.LastInsertId(); err != nil {
		return wrapErr("create brand", err)
	}
	brand.CreatedAt, brand.UpdatedAt = now, now
	return nil
}

func (s *Store) UpdateBrand(ctx context.Context, brand *domain.Brand) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE brands SET name = ?, daily_budget = ?, monthly_budget = ?, updated_at = ?
		WHERE id = ?`,
		brand.Name, brand.DailyBudget.String(), brand.MonthlyBudget.String(), nowText(), brand.ID)
	if err != nil {
		return wrapErr("update brand", err)
	}
	if err = affected("update brand", res); err != nil {
		return err
	}
	updated, err := s.GetBrand(ctx, brand.ID)
	if err != nil {
		return err
	}
	*brand = *updated
	return nil
}

func (s *Store) DeleteBrand(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM brands WHERE id = ?`, id)
	if err != nil {
		return wrapErr("delete brand", err)
	}
	return affected("delete brand", res)
}
