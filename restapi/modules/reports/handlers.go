// Package reports implements the REST API handlers for report viewing.
package reports

import (
	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetReport handles GET /api/v1/report.
// The text block is rendered one line per device in insertion order, for
// the front end to display verbatim.
func GetReport(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"report": fleet.Report.GenerateReport(),
		})
	}
}

// GetStatistics handles GET /api/v1/report/statistics, returning both the
// structured record and its text rendering
func GetStatistics(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats := fleet.Statistics()
		return c.JSON(fiber.Map{
			"statistics": stats,
			"text":       stats.String(),
		})
	}
}
