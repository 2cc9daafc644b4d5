// Package devices implements the REST API handlers for device provisioning.
package devices

import (
	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/fleetwatch/fleetrisk-backend/model"
	"github.com/gofiber/fiber/v2"
)

// RegisterDeviceRequest represents the body for device provisioning
type RegisterDeviceRequest struct {
	DeviceID        string `json:"device_id"`
	DeviceType      string `json:"device_type"`
	FirmwareVersion string `json:"firmware_version"`
	Status          string `json:"status"`
}

// PostDevice handles POST /api/v1/devices.
// The device is risk-scored internally at construction; an unknown device
// type is legal and starts from a zero base risk. Unknown status strings
// fall back to active at this boundary.
func PostDevice(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterDeviceRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		if req.DeviceType == "" || req.FirmwareVersion == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "device_type and firmware_version are required",
			})
		}

		status := model.ParseDeviceStatus(req.Status)
		device := fleet.RegisterDevice(req.DeviceID, req.DeviceType, req.FirmwareVersion, status)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"device":  device,
		})
	}
}

// ListDevices handles GET /api/v1/devices
func ListDevices(fleet *services.Fleet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		devices := fleet.Report.Devices()
		return c.JSON(fiber.Map{
			"count":   len(devices),
			"devices": devices,
		})
	}
}
