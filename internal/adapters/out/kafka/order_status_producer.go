// Package kafka emits order lifecycle events for downstream consumers
// (notification dispatch, analytics). Publishing is best effort and happens
// only after the transition has committed.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"storefront/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// EventOrderStatusChanged is the type tag of the event emitted for every
// committed status transition.
const EventOrderStatusChanged = "order.status_changed"

// OrderStatusChangedEvent is the wire payload published to the order-changed topic.
type OrderStatusChangedEvent struct {
	EventID        string    `json:"event_id"`
	OrderID        string    `json:"order_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Comment        string    `json:"comment,omitempty"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderStatusProducer publishes order status events to Kafka.
// A producer created without brokers is disabled: PublishStatusChanged
// becomes a no-op, which keeps local setups runnable without a broker.
type OrderStatusProducer struct {
	writer *kafka.Writer
}

// NewOrderStatusProducer creates a producer for the given topic.
// brokersCSV is a comma-separated broker list; empty disables publishing.
func NewOrderStatusProducer(brokersCSV, topic string) *OrderStatusProducer {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	if len(brokers) == 0 || topic == "" {
		return &OrderStatusProducer{}
	}

	return &OrderStatusProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Enabled reports whether the producer has a broker to publish to.
func (p *OrderStatusProducer) Enabled() bool {
	return p.writer != nil
}

// PublishStatusChanged emits one event for a committed transition.
// Messages for the same order share a key, so they stay ordered within
// a partition.
func (p *OrderStatusProducer) PublishStatusChanged(ctx context.Context, change order.StatusChange) error {
	if !p.Enabled() {
		return nil
	}

	if err := change.Validate(); err != nil {
		return err
	}

	event := OrderStatusChangedEvent{
		EventID:        change.ID().String(),
		OrderID:        change.OrderID().String(),
		PreviousStatus: change.Previous().String(),
		NewStatus:      change.Next().String(),
		Comment:        change.Comment(),
		Type:           EventOrderStatusChanged,
		CreatedAt:      time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  event.CreatedAt,
	})
}

// Close releases the underlying writer. Safe to call on a disabled producer.
func (p *OrderStatusProducer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
