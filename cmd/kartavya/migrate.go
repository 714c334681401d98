package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kartavya/website/internal/app/repositories"
	"github.com/kartavya/website/internal/bootstrap"
	"github.com/kartavya/website/internal/db"
	"github.com/kartavya/website/internal/seed"
)

// openDatabase loads the configuration and connects, for commands that work
// on the store directly.
func openDatabase() (*db.PostgresDB, zerolog.Logger, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, lgr, err
	}
	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, lgr, err
	}
	return database, lgr, nil
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		database, lgr, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		return bootstrap.RunMigrations(c.Context(), database.Pool, lgr)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo content into empty tables",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		database, lgr, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		var summary seed.Summary
		err = database.WithTransaction(c.Context(), func(ctx context.Context, tx pgx.Tx) error {
			var err error
			summary, err = seed.CreateDemoContent(ctx, repositories.NewSeedRepository(tx), time.Now(), lgr)
			return err
		})
		if err != nil {
			return fmt.Errorf("seed demo content: %w", err)
		}

		for collection, n := range summary {
			fmt.Fprintf(c.OutOrStdout(), "%-18s %d\n", collection, n)
		}
		fmt.Fprintf(c.OutOrStdout(), "%-18s %d\n", "total", summary.Total())
		return nil
	},
}
