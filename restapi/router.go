// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/fleetwatch/fleetrisk-backend/access"
	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/fleetwatch/fleetrisk-backend/restapi/modules/auth"
	"github.com/fleetwatch/fleetrisk-backend/restapi/modules/devices"
	"github.com/fleetwatch/fleetrisk-backend/restapi/modules/recommendations"
	"github.com/fleetwatch/fleetrisk-backend/restapi/modules/reports"
	"github.com/fleetwatch/fleetrisk-backend/util"
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint
func SetupRoutes(app *fiber.App, fleet *services.Fleet, schema graphql.Schema) {
	go autoApplyUsersOnStartup(fleet)

	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL Route - read-only fleet queries
	api.Post("/graphql", GraphQLHandler(schema))

	// User provisioning and authorization queries. Provisioning itself is an
	// administrative front-end concern, so these routes are not gated by the
	// action table.
	api.Post("/users", auth.CreateUser(fleet))
	api.Get("/users", auth.ListUsers(fleet))
	api.Post("/access/check", auth.CheckAccess(fleet))

	// Declarative user management
	rbac := api.Group("/rbac")
	rbac.Post("/apply/content", auth.ApplyUsersFromBody(fleet))
	rbac.Post("/apply/upload", auth.ApplyUsersFromUpload(fleet))
	rbac.Get("/config", auth.GetUsersConfig(fleet))

	// Device provisioning (admin only via the action table)
	api.Post("/devices", auth.RequireAction(fleet.Access, access.ActionAddDevice), devices.PostDevice(fleet))
	api.Get("/devices", auth.RequireAction(fleet.Access, access.ActionViewReport), devices.ListDevices(fleet))

	// Report viewing
	api.Get("/report", auth.RequireAction(fleet.Access, access.ActionViewReport), reports.GetReport(fleet))
	api.Get("/report/statistics", auth.RequireAction(fleet.Access, access.ActionViewReport), reports.GetStatistics(fleet))

	// Recommendation workflow. Approval is manager-only by the action table;
	// admin deliberately does not qualify.
	api.Get("/recommendations", auth.RequireAction(fleet.Access, access.ActionViewReport), recommendations.ListRecommendations(fleet))
	api.Post("/recommendations", auth.RequireAction(fleet.Access, access.ActionModifyReport), recommendations.PostRecommendation(fleet))
	api.Post("/recommendations/:index/approve", auth.RequireAction(fleet.Access, access.ActionApproveRecommendation), recommendations.ApproveRecommendation(fleet))
	api.Post("/recommendations/:index/reject", auth.RequireAction(fleet.Access, access.ActionModifyReport), recommendations.RejectRecommendation(fleet))

	fleet.Logger.Info("API routes initialized successfully")
}

// autoApplyUsersOnStartup seeds the user registry from a YAML config file
// when FLEETRISK_USERS_CONFIG points at one
func autoApplyUsersOnStartup(fleet *services.Fleet) {
	path := util.GetEnvDefault("FLEETRISK_USERS_CONFIG", "")
	if path == "" {
		return
	}

	config, err := auth.LoadUsersConfig(path)
	if err != nil {
		fleet.Logger.Warn("Failed to load users config on startup",
			zap.String("path", path), zap.Error(err))
		return
	}

	result := auth.ApplyUsers(fleet.Access, config)
	fleet.Logger.Info("Applied users config on startup",
		zap.String("path", path),
		zap.Int("created", len(result.Created)),
		zap.Int("updated", len(result.Updated)))
}
