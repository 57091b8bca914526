package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 10*time.Second, cfg.Scheduler.ActivationInterval)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "UTC", cfg.Clock.Timezone)
	assert.True(t, cfg.Billing.DefaultHourlyRate.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("SCHEDULER_ROLLUP_INTERVAL", "1m")
	t.Setenv("CLOCK_TIMEZONE", "Europe/Moscow")
	t.Setenv("BILLING_DEFAULT_HOURLY_RATE", "2.50")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.SQLite.Path)
	assert.Equal(t, time.Minute, cfg.Scheduler.RollupInterval)
	assert.True(t, cfg.Billing.DefaultHourlyRate.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())

	loc, err := cfg.Clock.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("SCHEDULER_PASS_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}
