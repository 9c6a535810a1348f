// Package graph exposes the reporting data over GraphQL: the sales series,
// low-stock alerts, and per-status order stats in one round trip for the
// reports page.
package graph

import (
	"encoding/json"
	"net/http"

	gql "github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/graphql"
)

var salesEntryType = gql.NewObject(gql.ObjectConfig{
	Name: "SalesEntry",
	Fields: gql.Fields{
		"id":     &gql.Field{Type: gql.Int},
		"date":   &gql.Field{Type: gql.String},
		"amount": &gql.Field{Type: gql.Float},
	},
})

var inventoryAlertType = gql.NewObject(gql.ObjectConfig{
	Name: "InventoryAlert",
	Fields: gql.Fields{
		"id":           &gql.Field{Type: gql.Int},
		"name":         &gql.Field{Type: gql.String},
		"quantity":     &gql.Field{Type: gql.Int},
		"reorderPoint": &gql.Field{Type: gql.Int},
	},
})

var orderStatsType = gql.NewObject(gql.ObjectConfig{
	Name: "OrderStats",
	Fields: gql.Fields{
		"status": &gql.Field{Type: gql.String},
		"count":  &gql.Field{Type: gql.Int},
		"total":  &gql.Field{Type: gql.Float},
	},
})

var dashboardType = gql.NewObject(gql.ObjectConfig{
	Name: "Dashboard",
	Fields: gql.Fields{
		"totalProducts": &gql.Field{Type: gql.Int},
		"totalOrders":   &gql.Field{Type: gql.Int},
		"totalInvoices": &gql.Field{Type: gql.Int},
		"totalUsers":    &gql.Field{Type: gql.Int},
		"pendingOrders": &gql.Field{Type: gql.Int},
		"revenue":       &gql.Field{Type: gql.Float},
	},
})

// NewSchema builds the reporting query root over the report service.
func NewSchema(reports *services.ReportService) (gql.Schema, error) {
	root := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"salesReport": &gql.Field{
				Type: gql.NewList(salesEntryType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return reports.Sales()
				},
			},
			"inventoryAlerts": &gql.Field{
				Type: gql.NewList(inventoryAlertType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return reports.Alerts()
				},
			},
			"orderStats": &gql.Field{
				Type: gql.NewList(orderStatsType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return reports.OrderStats()
				},
			},
			"dashboard": &gql.Field{
				Type: dashboardType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return reports.Dashboard()
				},
			},
		},
	})

	return graphql.NewSchema(root)
}

// Handler serves POST requests with the standard {query, variables} body.
func Handler(schema gql.Schema) http.HandlerFunc {
	type request struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		result := gql.Do(gql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result) //nolint:errcheck
	}
}
