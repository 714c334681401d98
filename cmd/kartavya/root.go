package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kartavya/website/internal/client"
	"github.com/kartavya/website/internal/config"
)

var (
	configPath string
	serverURL  string
	jsonOutput bool

	rootCmd = &cobra.Command{
		Use:          "kartavya",
		Short:        "KARTAVYA incubator website server and tools",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML configuration file")

	defaultServer := os.Getenv("KARTAVYA_SERVER")
	if defaultServer == "" {
		defaultServer = client.DefaultBaseURL
	}
	for _, c := range []*cobra.Command{ngosCmd, eventsCmd, applyCmd} {
		c.Flags().StringVar(&serverURL, "server", defaultServer, "base URL of a running site")
		c.Flags().BoolVar(&jsonOutput, "json", false, "print JSON instead of a table")
	}

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, ogImageCmd, ngosCmd, eventsCmd, applyCmd)
}
