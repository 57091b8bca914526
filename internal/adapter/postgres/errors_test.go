package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"adpacer/internal/core/domain"
)

func TestWrapErr(t *testing.T) {
	assert.NoError(t, wrapErr("op", nil))
	assert.ErrorIs(t, wrapErr("op", pgx.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, wrapErr("op", &pgconn.PgError{Code: codeForeignKeyViolation}), domain.ErrValidation)
	assert.ErrorIs(t, wrapErr("op", &pgconn.PgError{Code: codeCheckViolation}), domain.ErrValidation)
	assert.ErrorIs(t, wrapErr("op", context.DeadlineExceeded), domain.ErrStoreUnavailable)

	err := wrapErr("op", &pgconn.PgError{Code: "42P01"})
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)

	err = wrapErr("op", errors.New("boom"))
	assert.EqualError(t, err, "op: boom")
}
