// Package graphql assembles the root GraphQL schema.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/ortelius/railwatch-board/graphql/modules/incidents"
)

// CreateSchema builds the schema over the dashboard read side
func CreateSchema(src incidents.Source) (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: incidents.GetQueryFields(src),
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: rootQuery,
	})
}
