package fleet

import (
	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/graphql-go/graphql"
)

// GetQueryFields returns the fleet queries to be mounted in the root schema
func GetQueryFields(fleet *services.Fleet) graphql.Fields {
	return graphql.Fields{
		"devices": &graphql.Field{
			Type: graphql.NewList(DeviceType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveDevices(fleet)
			},
		},
		"device": &graphql.Field{
			Type: DeviceType,
			Args: graphql.FieldConfigArgument{
				"device_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				deviceID := p.Args["device_id"].(string)
				return ResolveDevice(fleet, deviceID)
			},
		},
		"recommendations": &graphql.Field{
			Type: graphql.NewList(RecommendationType),
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveRecommendations(fleet)
			},
		},
		"fleetStatistics": &graphql.Field{
			Type: StatisticsType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveStatistics(fleet)
			},
		},
		"fleetOverview": &graphql.Field{
			Type: OverviewType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveOverview(fleet)
			},
		},
	}
}
