package fleet

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/fleetwatch/fleetrisk-backend/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Producer handles sending fleet change events to Kafka
type Producer struct {
	Writer  *kafka.Writer
	brokers []string
}

// NewProducer initializes a new Kafka writer for fleet events
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		brokers: brokers,
	}
}

// Ping verifies broker reachability with exponential backoff before the
// producer is put into service
func (p *Producer) Ping(ctx context.Context) error {
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(func() error {
		conn, err := dialer.DialContext(ctx, "tcp", p.brokers[0])
		if err != nil {
			return err
		}
		return conn.Close()
	}, backoff.WithContext(bo, ctx))
}

// PublishDeviceRegistered sends a device registration event to the topic
func (p *Producer) PublishDeviceRegistered(ctx context.Context, device model.IoTDevice) error {
	event := DeviceRegisteredEvent{
		EventType:     EventTypeDeviceRegistered,
		EventID:       uuid.New().String(),
		EventTime:     time.Now().UTC(),
		SchemaVersion: "v1",
		Device:        device,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(device.DeviceID),
		Value: payload,
	})
}

// PublishRecommendationApproved sends a recommendation approval event to the topic
func (p *Producer) PublishRecommendationApproved(ctx context.Context, index int, description string) error {
	event := RecommendationApprovedEvent{
		EventType:     EventTypeRecommendationApproved,
		EventID:       uuid.New().String(),
		EventTime:     time.Now().UTC(),
		SchemaVersion: "v1",
		Index:         index,
		Description:   description,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EventID),
		Value: payload,
	})
}

// Close cleans up the Kafka writer
func (p *Producer) Close() error {
	return p.Writer.Close()
}
