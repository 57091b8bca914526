package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

var _ port.Store = (*Store)(nil)

// Store implements port.Store using pgxpool for PostgreSQL. Decimal
// columns travel as text so that NUMERIC values keep their exact scale.
type Store struct {
	pool *pgxpool.Pool
}

// New returns a store backed by pool. Closing the store closes the pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// scanner is satisfied by pgx.Row and pgx.CollectableRow.
type scanner interface {
	Scan(dest ...any) error
}

const (
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// wrapErr classifies a pgx error. Connection problems and timeouts become
// domain.ErrStoreUnavailable so that routine passes abort instead of
// counting every entity as failed.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			return &domain.ValidationError{Field: "brand_id", Message: "unknown brand"}
		case codeCheckViolation:
			return &domain.ValidationError{Field: pgErr.ConstraintName, Message: "constraint violated"}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	var (
		connErr *pgconn.ConnectError
		netErr  net.Error
	)
	if pgconn.Timeout(err) || errors.As(err, &connErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s %q: %w", field, s, err)
	}
	return d, nil
}

// parseNullDecimal maps a NULL aggregate to an invalid NullDecimal.
func parseNullDecimal(field string, s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := parseDecimal(field, *s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
