package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"adpacer/internal/db"
)

var seedOpts db.SeedOptions

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo brands and ads",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		clk, err := newClock()
		if err != nil {
			return err
		}
		if err = db.Seed(cmd.Context(), store, clk.Now(), seedOpts); err != nil {
			return err
		}
		logger.Info("demo data seeded",
			slog.Int("brands", seedOpts.Brands), slog.Int("ads_per_brand", seedOpts.AdsPerBrand))
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedOpts.Brands, "brands", 5, "Number of brands")
	seedCmd.Flags().IntVar(&seedOpts.AdsPerBrand, "ads", 4, "Ads per brand")
	seedCmd.Flags().Int64Var(&seedOpts.Seed, "seed", 0, "Random seed, 0 for time based")
}
