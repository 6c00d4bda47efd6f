package main

import (
	"os"

	"github.com/spf13/cobra"

	"datadesk/internal/interfaces/cli/migrate"
	"datadesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "datadesk",
		Short: "DataDesk - IT helpdesk and asset tracking",
		Long:  `DataDesk is a multi-tenant IT helpdesk backend with repair ticket tracking, asset inventory, and data center access logging.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
