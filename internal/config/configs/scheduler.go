package configs

import "time"

// Scheduler controls the periodic routine runner. Each routine has its own
// interval; PassTimeout bounds a single pass and LockTTL the lifetime of
// the pass lock in case a replica dies while holding it.
type Scheduler struct {
	Enabled            bool          `env:"ENABLED" envDefault:"true"`
	ActivationInterval time.Duration `env:"ACTIVATION_INTERVAL" envDefault:"10s"`
	AccrualInterval    time.Duration `env:"ACCRUAL_INTERVAL" envDefault:"10s"`
	RollupInterval     time.Duration `env:"ROLLUP_INTERVAL" envDefault:"10s"`
	PassTimeout        time.Duration `env:"PASS_TIMEOUT" envDefault:"30s"`
	LockTTL            time.Duration `env:"LOCK_TTL" envDefault:"1m"`
}
