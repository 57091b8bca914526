package configs

// Redis configures the distributed pass lock. When disabled, an in-process
// lock guards the routines, which is enough for a single replica.
type Redis struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	URL     string `env:"URL" envDefault:"redis://localhost:6379/0"`
}
