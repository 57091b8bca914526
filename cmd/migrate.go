package main

import (
	"github.com/spf13/cobra"

	"adpacer/internal/db"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded Postgres migrations",
	RunE: func(*cobra.Command, []string) error {
		if migrateDown {
			if err := db.MigrateDown(cfg.Psql.Addr.String()); err != nil {
				return err
			}
			logger.Info("migrations reverted")
			return nil
		}
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		logger.Info("migrations applied successfully")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Revert all migrations")
}
