package cli

import (
	"fmt"
	"log"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"

	"pokequiz-service/internal/config"
	"pokequiz-service/internal/infra/postgres"
	"pokequiz-service/internal/seed"
)

// NewSeedCmd wipes and repopulates the question store from the fixed
// in-code dataset.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reseed quiz questions from the built-in dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}

			if err := runMigrationsWithConfig(ctx, cfg); err != nil {
				return err
			}

			pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
			if err != nil {
				return err
			}
			defer pool.Close()

			report, err := postgres.NewSeeder(pool).Reseed(ctx, seed.Questions())
			if err != nil {
				return err
			}
			log.Printf("seeded %d/%d questions (verified %d)", report.Inserted, report.Expected, report.Verified)
			for _, warning := range report.Warnings {
				log.Printf("seed warning: %s", warning)
			}
			return nil
		},
	}
}
