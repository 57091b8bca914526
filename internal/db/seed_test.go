package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpacer/internal/adapter/memory"
)

func TestSeed(t *testing.T) {
	store := memory.New()
	now := time.Date(2023, time.January, 10, 12, 30, 0, 0, time.UTC)

	require.NoError(t, Seed(context.Background(), store, now, SeedOptions{Brands: 3, AdsPerBrand: 4, Seed: 42}))

	brands, err := store.ListBrands(context.Background())
	require.NoError(t, err)
	assert.Len(t, brands, 3)

	ads, err := store.ListAds(context.Background())
	require.NoError(t, err)
	require.Len(t, ads, 12)
	for _, a := range ads {
		assert.NoError(t, a.Validate())
		assert.False(t, a.Active)
	}
}
