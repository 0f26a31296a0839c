// Package incidents defines the GraphQL types for the incident board.
package incidents

import (
	"github.com/graphql-go/graphql"
)

// IncidentType is one incident with its display-ready fields alongside the raw ones
var IncidentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Incident",
	Fields: graphql.Fields{
		"id":                   &graphql.Field{Type: graphql.String},
		"network":              &graphql.Field{Type: graphql.String},
		"network_label":        &graphql.Field{Type: graphql.String},
		"status":               &graphql.Field{Type: graphql.String},
		"status_label":         &graphql.Field{Type: graphql.String},
		"severity_level":       &graphql.Field{Type: graphql.Int},
		"line_affected":        &graphql.Field{Type: graphql.String},
		"nodes":                &graphql.Field{Type: graphql.NewList(graphql.String)},
		"summary":              &graphql.Field{Type: graphql.String},
		"description":          &graphql.Field{Type: graphql.String},
		"descripcion_original": &graphql.Field{Type: graphql.String},
		"start_date":           &graphql.Field{Type: graphql.String},
		"end_date":             &graphql.Field{Type: graphql.String},
		"location_type":        &graphql.Field{Type: graphql.String},
		"cause_category":       &graphql.Field{Type: graphql.String},
		"transport_backup":     &graphql.Field{Type: graphql.Boolean},
		"primera_vez_visto":    &graphql.Field{Type: graphql.String},
		"ultima_vez_visto":     &graphql.Field{Type: graphql.String},
		// Table cells as shown on the board
		"display_summary":              &graphql.Field{Type: graphql.String},
		"display_original_description": &graphql.Field{Type: graphql.String},
		"display_severity":             &graphql.Field{Type: graphql.Int},
	},
})

// CountersType holds the summary counters of a view
var CountersType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DashboardCounters",
	Fields: graphql.Fields{
		"total":  &graphql.Field{Type: graphql.Int},
		"red":    &graphql.Field{Type: graphql.Int},
		"yellow": &graphql.Field{Type: graphql.Int},
	},
})

// FreshnessType describes the currently loaded feed
var FreshnessType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Freshness",
	Fields: graphql.Fields{
		"generated_at": &graphql.Field{Type: graphql.String},
		"last_update":  &graphql.Field{Type: graphql.String},
	},
})

// CodeLabelType maps a network or status code to its Spanish label
var CodeLabelType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CodeLabel",
	Fields: graphql.Fields{
		"code":  &graphql.Field{Type: graphql.String},
		"label": &graphql.Field{Type: graphql.String},
	},
})
