// Command bizdesk is the dashboard CLI. It serves the API, inspects and
// exports the collection store, and runs the operational pieces (migrations,
// queue workers, the scheduler) as standalone processes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register migrations and seeds through their init funcs.
	_ "github.com/shashiranjanraj/bizdesk/database/migrations"
	_ "github.com/shashiranjanraj/bizdesk/database/seeders"
)

var rootCmd = &cobra.Command{
	Use:   "bizdesk",
	Short: "BizDesk admin dashboard",
	Long:  "BizDesk serves the admin dashboard API and manages its collection store.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Collection store
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(collectionsListCmd)
	rootCmd.AddCommand(exportCmd)

	// Database (REPO_DRIVER=database only)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)

	// Workers
	rootCmd.AddCommand(queueWorkCmd)
	rootCmd.AddCommand(scheduleRunCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
