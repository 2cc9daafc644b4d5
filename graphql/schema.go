// Package graphql assembles the root schema from the per-module query fields.
package graphql

import (
	gqlfleet "github.com/fleetwatch/fleetrisk-backend/graphql/modules/fleet"
	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/graphql-go/graphql"
)

// CreateSchema builds the root query schema over the fleet service
func CreateSchema(fleet *services.Fleet) (graphql.Schema, error) {
	fields := graphql.Fields{}
	for name, field := range gqlfleet.GetQueryFields(fleet) {
		fields[name] = field
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
