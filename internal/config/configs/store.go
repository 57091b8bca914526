package configs

// Store selects the persistence adapter. Driver is one of "postgres",
// "sqlite" or "memory".
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// SQLite configures the embedded database used by the sqlite driver.
type SQLite struct {
	Path string `env:"PATH" envDefault:"adpacer.db"`
}
