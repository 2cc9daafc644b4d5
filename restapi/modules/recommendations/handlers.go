// Package recommendations implements the REST API handlers for the
// recommendation workflow.
package recommendations

import (
	"strconv"

	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AddRecommendationRequest represents the body for adding a recommendation
type AddRecommendationRequest struct {
	Description string `json:"description"`
}

// ListRecommendations handles GET /api/v1/recommendations
func ListRecommendations(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recs := fleet.Report.Recommendations()
		return c.JSON(fiber.Map{
			"count":           len(recs),
			"recommendations": recs,
			"text":            fleet.Report.ViewRecommendations(),
		})
	}
}

// PostRecommendation handles POST /api/v1/recommendations
func PostRecommendation(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AddRecommendationRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		if req.Description == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "description is required",
			})
		}

		rec := fleet.AddRecommendation(req.Description)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":        true,
			"recommendation": rec,
		})
	}
}

// ApproveRecommendation handles POST /api/v1/recommendations/:index/approve.
// The index in the path is 1-based; an out-of-range index is a validation
// failure, not a crash, and leaves the list unchanged.
func ApproveRecommendation(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "index must be an integer",
			})
		}

		if err := fleet.ApproveRecommendation(index); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Recommendation approved",
		})
	}
}

// RejectRecommendation handles POST /api/v1/recommendations/:index/reject
func RejectRecommendation(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "index must be an integer",
			})
		}

		if err := fleet.RejectRecommendation(index); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Recommendation rejected",
		})
	}
}
