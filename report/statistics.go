package report

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/fleetwatch/fleetrisk-backend/model"
	"github.com/fleetwatch/fleetrisk-backend/risk"
)

// HighRiskThreshold partitions devices into the high and low risk bands.
const HighRiskThreshold = 5

// Statistics is the summary record derived from the device list
type Statistics struct {
	TotalDevices       int `json:"total_devices"`
	ActiveDevices      int `json:"active_devices"`
	InactiveDevices    int `json:"inactive_devices"`
	MaintenanceDevices int `json:"maintenance_devices"`
	HighRiskDevices    int `json:"high_risk_devices"`
	LowRiskDevices     int `json:"low_risk_devices"`
	OutdatedFirmware   int `json:"outdated_firmware"`
}

// GenerateStatistics computes summary statistics over the current device
// list. The table supplies the newest known firmware version per device
// type for the outdated-firmware count; a nil table skips that count.
// The computation is read-only, so repeated calls without mutation return
// identical results.
func (r *DeviceReport) GenerateStatistics(table *risk.Table) Statistics {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Statistics{TotalDevices: len(r.devices)}
	for _, device := range r.devices {
		switch device.Status {
		case model.StatusActive:
			stats.ActiveDevices++
		case model.StatusInactive:
			stats.InactiveDevices++
		case model.StatusUnderMaintenance:
			stats.MaintenanceDevices++
		}

		if device.RiskLevel >= HighRiskThreshold {
			stats.HighRiskDevices++
		} else {
			stats.LowRiskDevices++
		}

		if table != nil && firmwareOutdated(table, device) {
			stats.OutdatedFirmware++
		}
	}
	return stats
}

// firmwareOutdated reports whether the device runs a firmware version older
// than the newest one the risk table knows for its type. Unknown types and
// unparseable versions are never counted as outdated.
func firmwareOutdated(table *risk.Table, device *model.IoTDevice) bool {
	newest := table.NewestVersion(device.DeviceType)
	if newest == nil {
		return false
	}
	current, err := semver.NewVersion(device.FirmwareVersion)
	if err != nil {
		return false
	}
	return current.LessThan(newest)
}

// String renders the statistics as the human-readable text block the front
// end displays verbatim
func (s Statistics) String() string {
	return fmt.Sprintf("Total Devices: %d\n"+
		"Active Devices: %d\n"+
		"Inactive Devices: %d\n"+
		"Under Maintenance: %d\n"+
		"High Risk Devices (Risk Level >= 5): %d\n"+
		"Low Risk Devices (Risk Level < 5): %d\n"+
		"Devices on Outdated Firmware: %d\n",
		s.TotalDevices, s.ActiveDevices, s.InactiveDevices,
		s.MaintenanceDevices, s.HighRiskDevices, s.LowRiskDevices,
		s.OutdatedFirmware)
}
