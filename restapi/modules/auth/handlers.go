package auth

import (
	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/fleetwatch/fleetrisk-backend/model"
	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /api/v1/users.
// Role and status strings are parsed here at the boundary; unknown role
// strings fall back to viewer and a missing is_active defaults to true.
// A duplicate username overwrites the existing entry.
func CreateUser(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		if req.Username == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "username is required",
			})
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		role := model.ParseRole(req.Role)
		fleet.Access.AddUser(req.Username, role, isActive)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"username":  req.Username,
			"role":      role,
			"is_active": isActive,
		})
	}
}

// ListUsers handles GET /api/v1/users
func ListUsers(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users := fleet.Access.ListUsers()
		return c.JSON(fiber.Map{
			"count": len(users),
			"users": users,
		})
	}
}

// CheckAccess handles POST /api/v1/access/check. Authorization denial is a
// normal boolean outcome, not an error status.
func CheckAccess(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CheckAccessRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		if req.Username == "" || req.Action == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "username and action are required",
			})
		}

		return c.JSON(fiber.Map{
			"username": req.Username,
			"action":   req.Action,
			"allowed":  fleet.Access.CheckAccess(req.Username, req.Action),
		})
	}
}
