package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/bizdesk/app/controllers"
	"github.com/shashiranjanraj/bizdesk/app/routes"
	"github.com/shashiranjanraj/bizdesk/internal/server"
	"github.com/shashiranjanraj/bizdesk/pkg/router"
)

// bizdesk serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (and gRPC health when GRPC_PORT is set)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// bizdesk route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Controllers carry nil services: registration only records method
		// values, nothing is invoked.
		r := router.New()
		routes.RegisterAPI(r, &routes.API{
			Auth:          controllers.NewAuthController(nil),
			Inventory:     controllers.NewInventoryController(nil),
			Orders:        controllers.NewOrderController(nil),
			Invoices:      controllers.NewInvoiceController(nil),
			Users:         controllers.NewUserController(nil),
			Reports:       controllers.NewReportController(nil),
			Notifications: controllers.NewNotificationController(nil),
			Integrations:  controllers.NewIntegrationController(nil),
		})

		table := r.Routes()
		if len(table) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if table[names[i]] != table[names[j]] {
				return table[names[i]] < table[names[j]]
			}
			return names[i] < names[j]
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PATH\tNAME")
		fmt.Fprintln(w, "----\t----")
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", table[name], name)
		}
		return w.Flush()
	},
}
