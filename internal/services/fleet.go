// Package services wires the core components into the operations the API
// surfaces call.
package services

import (
	"context"
	"time"

	"github.com/fleetwatch/fleetrisk-backend/access"
	fleetevents "github.com/fleetwatch/fleetrisk-backend/events/modules/fleet"
	"github.com/fleetwatch/fleetrisk-backend/model"
	"github.com/fleetwatch/fleetrisk-backend/report"
	"github.com/fleetwatch/fleetrisk-backend/risk"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fleet bundles the access controller, the device report and the risk
// scorer behind the operations the REST and GraphQL layers expose.
// Events is optional; a nil producer disables event publishing.
type Fleet struct {
	Access *access.Controller
	Report *report.DeviceReport
	Scorer *risk.Scorer
	Events *fleetevents.Producer
	Logger *zap.Logger
}

// NewFleet creates the service with an empty user registry and device report
func NewFleet(scorer *risk.Scorer, logger *zap.Logger) *Fleet {
	return &Fleet{
		Access: access.NewController(logger),
		Report: report.NewDeviceReport(),
		Scorer: scorer,
		Logger: logger,
	}
}

// RegisterDevice scores and registers a new device. A blank device ID gets
// a generated one. The risk level is computed once, here, against the
// device's own creation timestamp; the stale-firmware bonus therefore only
// fires for devices whose registration itself spans the age threshold.
// Later status or time changes never recompute it.
func (f *Fleet) RegisterDevice(deviceID, deviceType, firmwareVersion string, status model.DeviceStatus) *model.IoTDevice {
	if deviceID == "" {
		deviceID = uuid.New().String()
	}

	createdAt := time.Now()
	device := &model.IoTDevice{
		DeviceID:        deviceID,
		DeviceType:      deviceType,
		FirmwareVersion: firmwareVersion,
		Status:          status,
		CreatedAt:       createdAt,
		RiskLevel:       f.Scorer.Score(deviceType, firmwareVersion, createdAt, createdAt),
	}
	f.Report.AddDevice(device)

	f.Logger.Info("Device registered",
		zap.String("device_id", device.DeviceID),
		zap.String("device_type", device.DeviceType),
		zap.Int("risk_level", device.RiskLevel))

	f.publishDeviceRegistered(*device)
	return device
}

// AddRecommendation appends a pending recommendation to the report
func (f *Fleet) AddRecommendation(description string) *model.Recommendation {
	rec := model.NewRecommendation(description)
	f.Report.AddRecommendation(rec)
	return rec
}

// ApproveRecommendation approves the recommendation at the 1-based index
// and publishes an approval event on success
func (f *Fleet) ApproveRecommendation(index int) error {
	if err := f.Report.ApproveRecommendation(index); err != nil {
		return err
	}
	f.publishRecommendationApproved(index)
	return nil
}

// RejectRecommendation returns the recommendation at the 1-based index to
// the pending state
func (f *Fleet) RejectRecommendation(index int) error {
	return f.Report.RejectRecommendation(index)
}

// Statistics computes the current summary statistics
func (f *Fleet) Statistics() report.Statistics {
	return f.Report.GenerateStatistics(f.Scorer.Table())
}

func (f *Fleet) publishDeviceRegistered(device model.IoTDevice) {
	if f.Events == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := f.Events.PublishDeviceRegistered(ctx, device); err != nil {
			f.Logger.Warn("Failed to publish device registration event",
				zap.String("device_id", device.DeviceID), zap.Error(err))
		}
	}()
}

func (f *Fleet) publishRecommendationApproved(index int) {
	if f.Events == nil {
		return
	}
	recs := f.Report.Recommendations()
	if index < 1 || index > len(recs) {
		return
	}
	description := recs[index-1].Description
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := f.Events.PublishRecommendationApproved(ctx, index, description); err != nil {
			f.Logger.Warn("Failed to publish recommendation approval event",
				zap.Int("index", index), zap.Error(err))
		}
	}()
}
