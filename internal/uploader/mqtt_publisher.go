package uploader

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nerrad567/nclink-core/internal/infrastructure/mqtt"
	"github.com/nerrad567/nclink-core/internal/nclink"
)

// Publisher is the publish side of the MQTT client.
type Publisher interface {
	PublishRetained(topic string, payload []byte) error
	PublishDefault(topic string, payload []byte) error
	Topics() mqtt.Topics
}

// MQTTPublisher publishes inventories and samples to the broker.
type MQTTPublisher struct {
	pub Publisher
	now func() time.Time
}

// NewMQTTPublisher creates a publisher over an MQTT client.
func NewMQTTPublisher(pub Publisher) *MQTTPublisher {
	return &MQTTPublisher{pub: pub, now: time.Now}
}

// Name implements Sink.
func (*MQTTPublisher) Name() string { return "mqtt" }

// PublishInventory publishes the device inventory, retained, on the
// device's inventory topic.
func (p *MQTTPublisher) PublishInventory(dev *nclink.Device) error {
	payload, err := json.Marshal(NewInventoryDocument(dev, p.now()))
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}
	if err := p.pub.PublishRetained(p.pub.Topics().Inventory(dev.DevGUID()), payload); err != nil {
		return fmt.Errorf("publishing inventory: %w", err)
	}
	return nil
}

// Write implements Sink by publishing the sample on the device's sample topic.
func (p *MQTTPublisher) Write(ctx context.Context, s Sample) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding sample: %w", err)
	}
	return p.pub.PublishDefault(p.pub.Topics().Sample(s.DevGUID), payload)
}
