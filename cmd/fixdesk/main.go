package main

import (
	"os"

	"github.com/spf13/cobra"

	"fixdesk/internal/interfaces/cli/migrate"
	"fixdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fixdesk",
		Short: "fixdesk - equipment repair request tracker",
		Long:  `fixdesk tracks equipment repair requests with numbered tickets, comments, and role-based access control.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
