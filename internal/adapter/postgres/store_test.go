package postgres

import (
	"context"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"adpacer/internal/adapter/storetest"
	"adpacer/internal/config/configs"
	"adpacer/internal/core/port"
	"adpacer/internal/db"
)

// TestStore runs against the database in PSQL_TEST_ADDRESS. The database is
// migrated and every table is truncated between subtests.
func TestStore(t *testing.T) {
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	storetest.Run(t, func(t *testing.T) port.Store {
		_, err := pool.Exec(context.Background(),
			`TRUNCATE brands, ads, ad_spend, settings RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
		return &Store{pool: pool}
	})
}
