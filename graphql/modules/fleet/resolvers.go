package fleet

import (
	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/fleetwatch/fleetrisk-backend/model"
)

// ResolveDevices returns all registered devices in insertion order
func ResolveDevices(fleet *services.Fleet) ([]*model.IoTDevice, error) {
	return fleet.Report.Devices(), nil
}

// ResolveDevice returns the first device matching the id, or nil.
// Device IDs are not unique by design; the earliest registration wins here.
func ResolveDevice(fleet *services.Fleet, deviceID string) (*model.IoTDevice, error) {
	for _, device := range fleet.Report.Devices() {
		if device.DeviceID == deviceID {
			return device, nil
		}
	}
	return nil, nil
}

// ResolveRecommendations returns the recommendation list in insertion order
func ResolveRecommendations(fleet *services.Fleet) ([]*model.Recommendation, error) {
	return fleet.Report.Recommendations(), nil
}

// ResolveStatistics computes the current fleet statistics record
func ResolveStatistics(fleet *services.Fleet) (interface{}, error) {
	return fleet.Statistics(), nil
}

// ResolveOverview returns the high-level fleet counts
func ResolveOverview(fleet *services.Fleet) (interface{}, error) {
	stats := fleet.Statistics()
	return map[string]interface{}{
		"total_devices":         stats.TotalDevices,
		"total_recommendations": len(fleet.Report.Recommendations()),
		"total_users":           len(fleet.Access.ListUsers()),
		"high_risk_devices":     stats.HighRiskDevices,
	}, nil
}
