// Package orderpublisher publishes order lifecycle events to Kafka.
//
// Every event is a JSON document keyed by the order id, so all events of one
// order land on the same partition and keep their relative order:
//
//	{"type":"order.created","orderId":42,"customerName":"Ana","status":"Pending",
//	 "items":[{"name":"Coffee","price":3.5}],"occurredAt":"2025-01-01T10:00:00Z"}
//
//	{"type":"order.status_changed","orderId":42,"from":"Pending","to":"Ready",
//	 "occurredAt":"2025-01-01T10:05:00Z"}
package orderpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"kitchen/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

const (
	// TypeOrderCreated is the type of the event sent after an order is committed.
	TypeOrderCreated = "order.created"
	// TypeOrderStatusChanged is the type of the event sent after a status change is committed.
	TypeOrderStatusChanged = "order.status_changed"

	typeHeader = "event-type"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher implements ports.OrderEventPublisher on top of a kafka-go Writer.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher creates a publisher writing synchronously to topic.
//
// Example:
//
//	publisher := orderpublisher.NewKafkaPublisher([]string{"localhost:9092"}, "orders.changed")
//	defer publisher.Close()
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}

type lineItemPayload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type createdPayload struct {
	Type         string            `json:"type"`
	OrderID      int64             `json:"orderId"`
	CustomerName string            `json:"customerName"`
	Status       string            `json:"status"`
	Items        []lineItemPayload `json:"items"`
	OccurredAt   time.Time         `json:"occurredAt"`
}

type statusChangedPayload struct {
	Type       string    `json:"type"`
	OrderID    int64     `json:"orderId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

// PublishOrderCreated sends an order.created event.
func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, event order.CreatedEvent) error {
	items := make([]lineItemPayload, 0, len(event.LineItems))
	for _, li := range event.LineItems {
		items = append(items, lineItemPayload{Name: li.ProductName(), Price: li.Price().Amount()})
	}

	return p.publish(ctx, event.OrderID, TypeOrderCreated, createdPayload{
		Type:         TypeOrderCreated,
		OrderID:      event.OrderID,
		CustomerName: event.CustomerName,
		Status:       event.Status.String(),
		Items:        items,
		OccurredAt:   event.OccurredAt.UTC(),
	})
}

// PublishStatusChanged sends an order.status_changed event.
func (p *KafkaPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error {
	return p.publish(ctx, event.OrderID, TypeOrderStatusChanged, statusChangedPayload{
		Type:       TypeOrderStatusChanged,
		OrderID:    event.OrderID,
		From:       event.From.String(),
		To:         event.To.String(),
		OccurredAt: event.OccurredAt.UTC(),
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, orderID int64, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", eventType, err)
	}

	msg := kafka.Message{
		Key:     []byte(strconv.FormatInt(orderID, 10)),
		Value:   data,
		Headers: []kafka.Header{{Key: typeHeader, Value: []byte(eventType)}},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event to %s: %w", eventType, p.topic, err)
	}

	return nil
}

// Close flushes pending messages and releases the connections.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards every event. It is used when no broker is configured.
type NopPublisher struct{}

// PublishOrderCreated does nothing.
func (NopPublisher) PublishOrderCreated(context.Context, order.CreatedEvent) error { return nil }

// PublishStatusChanged does nothing.
func (NopPublisher) PublishStatusChanged(context.Context, order.StatusChangedEvent) error { return nil }

// Close does nothing.
func (NopPublisher) Close() error { return nil }
