// Package fleet defines the Kafka event contracts for fleet changes.
package fleet

import (
	"time"

	"github.com/fleetwatch/fleetrisk-backend/model"
)

// Event types published to the fleet events topic
const (
	EventTypeDeviceRegistered       = "fleet.device.registered"
	EventTypeRecommendationApproved = "fleet.recommendation.approved"
)

// DeviceRegisteredEvent is published when a device is added to the fleet
type DeviceRegisteredEvent struct {
	EventType     string          `json:"event_type"`
	EventID       string          `json:"event_id"`
	EventTime     time.Time       `json:"event_time"`
	SchemaVersion string          `json:"schema_version"`
	Device        model.IoTDevice `json:"device"`
}

// RecommendationApprovedEvent is published when a recommendation is approved
type RecommendationApprovedEvent struct {
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EventTime     time.Time `json:"event_time"`
	SchemaVersion string    `json:"schema_version"`
	Index         int       `json:"index"`
	Description   string    `json:"description"`
}
