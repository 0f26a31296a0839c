package incidents

import (
	"github.com/graphql-go/graphql"
)

func filterArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"search":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
		"network": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
		"status":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
	}
}

// GetQueryFields returns the incident queries to be mounted in the root schema
func GetQueryFields(src Source) graphql.Fields {
	return graphql.Fields{
		"incidents": &graphql.Field{
			Type: graphql.NewList(IncidentType),
			Args: filterArgs(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveIncidents(src, criteriaFromArgs(p.Args)), nil
			},
		},
		"dashboardCounters": &graphql.Field{
			Type: CountersType,
			Args: filterArgs(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveCounters(src, criteriaFromArgs(p.Args)), nil
			},
		},
		"freshness": &graphql.Field{
			Type: FreshnessType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveFreshness(src), nil
			},
		},
		"networks": &graphql.Field{
			Type: graphql.NewList(CodeLabelType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveNetworks(), nil
			},
		},
		"statuses": &graphql.Field{
			Type: graphql.NewList(CodeLabelType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveStatuses(), nil
			},
		},
	}
}
