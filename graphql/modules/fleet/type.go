// Package fleet defines the GraphQL types for fleet queries.
package fleet

import (
	"github.com/graphql-go/graphql"
)

// DeviceType represents a registered fleet device
var DeviceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Device",
	Fields: graphql.Fields{
		"device_id":        &graphql.Field{Type: graphql.String},
		"device_type":      &graphql.Field{Type: graphql.String},
		"firmware_version": &graphql.Field{Type: graphql.String},
		"status":           &graphql.Field{Type: graphql.String},
		"created_at":       &graphql.Field{Type: graphql.DateTime},
		"risk_level":       &graphql.Field{Type: graphql.Int},
	},
})

// RecommendationType represents a report recommendation and its approval state
var RecommendationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Recommendation",
	Fields: graphql.Fields{
		"description": &graphql.Field{Type: graphql.String},
		"approved":    &graphql.Field{Type: graphql.Boolean},
	},
})

// StatisticsType represents the fleet summary statistics record
var StatisticsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FleetStatistics",
	Fields: graphql.Fields{
		"total_devices":       &graphql.Field{Type: graphql.Int},
		"active_devices":      &graphql.Field{Type: graphql.Int},
		"inactive_devices":    &graphql.Field{Type: graphql.Int},
		"maintenance_devices": &graphql.Field{Type: graphql.Int},
		"high_risk_devices":   &graphql.Field{Type: graphql.Int},
		"low_risk_devices":    &graphql.Field{Type: graphql.Int},
		"outdated_firmware":   &graphql.Field{Type: graphql.Int},
	},
})

// OverviewType represents the high-level fleet counts for the top cards
var OverviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FleetOverview",
	Fields: graphql.Fields{
		"total_devices":         &graphql.Field{Type: graphql.Int},
		"total_recommendations": &graphql.Field{Type: graphql.Int},
		"total_users":           &graphql.Field{Type: graphql.Int},
		"high_risk_devices":     &graphql.Field{Type: graphql.Int},
	},
})
