// Package kafka publishes order lifecycle events to the message broker.
// Publishing is best-effort; the caller logs failures and never fails the
// committed mutation over them.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"laundry/internal/core/ports"
)

// statusChangedMessage is the wire format of an order status change.
type statusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	UpdatedBy  string    `json:"updatedBy"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderEventPublisher implements ports.OrderEventPublisher over a kafka
// topic. Messages are keyed by order id so one order's events stay ordered
// within a partition.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher writing to topic on the given
// brokers. brokersCSV is a comma separated broker list; an empty list yields
// a disabled publisher whose publishes are silent no-ops, so deployments
// without a broker run unchanged.
func NewOrderEventPublisher(brokersCSV, topic string) *OrderEventPublisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 || topic == "" {
		return &OrderEventPublisher{}
	}

	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Enabled reports whether a broker is configured.
func (p *OrderEventPublisher) Enabled() bool {
	return p.writer != nil
}

// PublishStatusChanged writes the event as JSON keyed by order id.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	if p.writer == nil {
		return nil
	}

	payload, err := json.Marshal(statusChangedMessage{
		OrderID:    event.OrderID.String(),
		FromStatus: event.FromStatus.String(),
		ToStatus:   event.ToStatus.String(),
		UpdatedBy:  event.UpdatedBy.String(),
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
		Time:  time.Now().UTC(),
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
