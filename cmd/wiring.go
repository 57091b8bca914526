package main

import (
	"context"
	"fmt"
	"log/slog"

	"adpacer/internal/adapter/lock"
	"adpacer/internal/adapter/memory"
	"adpacer/internal/adapter/postgres"
	"adpacer/internal/adapter/sqlite"
	"adpacer/internal/clock"
	"adpacer/internal/core/port"
	"adpacer/internal/db"
)

// openStore builds the store selected by STORE_DRIVER.
func openStore(ctx context.Context) (port.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		// Optionally run migrations if configured.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.New(pool), nil
	case "sqlite":
		return sqlite.New(cfg.SQLite.Path)
	case "memory":
		logger.Warn("using in-memory store, data is lost on exit")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// newLocker returns the Redis lock when enabled, otherwise an in-process
// lock. The returned cleanup closes the Redis client.
func newLocker(ctx context.Context) (port.Locker, func(), error) {
	if !cfg.Redis.Enabled {
		return lock.NewLocal(), func() {}, nil
	}
	rc, err := lock.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using redis pass lock", slog.String("addr", rc.Options().Addr))
	return lock.NewRedis(rc, ""), func() { _ = rc.Close() }, nil
}

func newClock() (clock.System, error) {
	loc, err := cfg.Clock.Location()
	if err != nil {
		return clock.System{}, err
	}
	return clock.NewSystem(loc), nil
}
