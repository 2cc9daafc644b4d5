package auth

import (
	"github.com/fleetwatch/fleetrisk-backend/access"
	"github.com/gofiber/fiber/v2"
)

// CallerHeader carries the caller's username. Authentication proper is the
// front end's responsibility; this service only authorizes.
const CallerHeader = "X-Username"

// RequireAction middleware resolves the caller from the X-Username header
// and blocks the request unless the access controller allows the action
func RequireAction(ac *access.Controller, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Get(CallerHeader)
		if username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing " + CallerHeader + " header",
			})
		}

		if ac.GetUser(username) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unknown user",
			})
		}

		if !ac.CheckAccess(username, action) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Insufficient permissions",
			})
		}

		c.Locals("username", username)
		return c.Next()
	}
}
