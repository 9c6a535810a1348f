// Package graphql wraps schema construction for the reporting API. The field
// definitions live in app/graph; this keeps the graphql-go plumbing in one
// place.
package graphql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds a read-only schema from the given root query object.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}
