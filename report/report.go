// Package report implements the device report: the ordered device registry,
// the recommendation list, and the summary statistics derived from them.
package report

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fleetwatch/fleetrisk-backend/model"
)

// DeviceReport owns the fleet's devices and recommendations for one session.
// Devices keep insertion order; recommendation approval is addressed by
// 1-based position in that order.
type DeviceReport struct {
	mu              sync.RWMutex
	devices         []*model.IoTDevice
	recommendations []*model.Recommendation
}

// NewDeviceReport creates an empty report
func NewDeviceReport() *DeviceReport {
	return &DeviceReport{}
}

// AddDevice appends a device to the report. The device's risk level must
// already be computed. Duplicate device IDs are permitted.
func (r *DeviceReport) AddDevice(device *model.IoTDevice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices = append(r.devices, device)
}

// Devices returns a snapshot of the device list in insertion order
func (r *DeviceReport) Devices() []*model.IoTDevice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	devices := make([]*model.IoTDevice, len(r.devices))
	copy(devices, r.devices)
	return devices
}

// GenerateReport renders one line per device in insertion order
func (r *DeviceReport) GenerateReport() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := make([]string, 0, len(r.devices))
	for _, device := range r.devices {
		lines = append(lines, device.String())
	}
	return strings.Join(lines, "\n")
}

// AddRecommendation appends a recommendation to the report
func (r *DeviceReport) AddRecommendation(rec *model.Recommendation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recommendations = append(r.recommendations, rec)
}

// Recommendations returns a snapshot of the recommendation list
func (r *DeviceReport) Recommendations() []*model.Recommendation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := make([]*model.Recommendation, len(r.recommendations))
	copy(recs, r.recommendations)
	return recs
}

// ViewRecommendations renders the recommendation list with approval state
func (r *DeviceReport) ViewRecommendations() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := make([]string, 0, len(r.recommendations))
	for _, rec := range r.recommendations {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n")
}

// ApproveRecommendation approves the recommendation at the given 1-based
// index. An out-of-range index is a recoverable error and mutates nothing.
func (r *DeviceReport) ApproveRecommendation(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 1 || index > len(r.recommendations) {
		return fmt.Errorf("invalid recommendation index %d: have %d recommendations", index, len(r.recommendations))
	}
	r.recommendations[index-1].Approve()
	return nil
}

// RejectRecommendation returns the recommendation at the given 1-based
// index to the pending state. Same index rules as ApproveRecommendation.
func (r *DeviceReport) RejectRecommendation(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 1 || index > len(r.recommendations) {
		return fmt.Errorf("invalid recommendation index %d: have %d recommendations", index, len(r.recommendations))
	}
	r.recommendations[index-1].Reject()
	return nil
}
