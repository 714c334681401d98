package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kartavya/website/internal/server"
)

var (
	skipMigrate bool

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			srv, err := server.NewServer(c.Context(), server.Options{
				ConfigPath:  configPath,
				SkipMigrate: skipMigrate,
			})
			if err != nil {
				return fmt.Errorf("start server: %w", err)
			}
			return srv.Run()
		},
	}
)

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply pending migrations on startup")
}
