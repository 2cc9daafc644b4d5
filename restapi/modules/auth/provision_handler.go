package auth

import (
	"fmt"
	"io"

	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ApplyUsersFromBody handles POST /api/v1/rbac/apply/content (CI/CD push model)
// It accepts YAML configuration directly in the request body.
func ApplyUsersFromBody(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		if len(body) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Request body is empty. Send YAML content as request body.",
			})
		}

		config, err := ParseUsersConfig(body)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}

		result := ApplyUsers(fleet.Access, config)
		return buildApplyResponse(c, result)
	}
}

// ApplyUsersFromUpload handles POST /api/v1/rbac/apply/upload (file upload)
// It allows manual reconciliation by uploading a users.yaml file.
func ApplyUsersFromUpload(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "No file uploaded. Use 'file' as the form field name.",
			})
		}

		src, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("Failed to open file: %v", err),
			})
		}
		defer src.Close()

		content, err := io.ReadAll(src)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("Failed to read file: %v", err),
			})
		}

		config, err := ParseUsersConfig(content)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}

		result := ApplyUsers(fleet.Access, config)
		return buildApplyResponse(c, result)
	}
}

// GetUsersConfig returns the current registry as a users configuration object
func GetUsersConfig(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users := fleet.Access.ListUsers()

		configUsers := make([]ConfigUser, 0, len(users))
		for _, user := range users {
			isActive := user.IsActive
			configUsers = append(configUsers, ConfigUser{
				Username: user.Username,
				Role:     string(user.Role),
				IsActive: &isActive,
			})
		}

		return c.JSON(UsersConfig{Users: configUsers})
	}
}

// buildApplyResponse creates a consistent JSON response for apply operations
func buildApplyResponse(c *fiber.Ctx, result *ApplyResult) error {
	return c.JSON(fiber.Map{
		"success": true,
		"summary": fiber.Map{
			"created": len(result.Created),
			"updated": len(result.Updated),
		},
		"details": fiber.Map{
			"created": result.Created,
			"updated": result.Updated,
		},
	})
}
