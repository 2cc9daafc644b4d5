package model

import (
	"fmt"
	"time"
)

// DeviceStatus is the operational status of a fleet device
type DeviceStatus string

// Device statuses as reported by the fleet
const (
	StatusActive           DeviceStatus = "active"
	StatusInactive         DeviceStatus = "inactive"
	StatusUnderMaintenance DeviceStatus = "under maintenance"
)

// ParseDeviceStatus converts a free-text status string supplied by the
// front end. Unknown values fall back to active, the documented default.
func ParseDeviceStatus(s string) DeviceStatus {
	switch DeviceStatus(s) {
	case StatusActive, StatusInactive, StatusUnderMaintenance:
		return DeviceStatus(s)
	default:
		return StatusActive
	}
}

// IoTDevice represents a tracked fleet device. RiskLevel is computed once
// when the device is registered and is not recomputed on later status or
// time changes.
type IoTDevice struct {
	DeviceID        string       `json:"device_id"`
	DeviceType      string       `json:"device_type"`
	FirmwareVersion string       `json:"firmware_version"`
	Status          DeviceStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	RiskLevel       int          `json:"risk_level"`
}

// String renders the device as a single report line
func (d *IoTDevice) String() string {
	return fmt.Sprintf("Device %s: %s v%s - Status: %s - Risk Level: %d",
		d.DeviceID, d.DeviceType, d.FirmwareVersion, d.Status, d.RiskLevel)
}
