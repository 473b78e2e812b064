package storage

import (
	"context"
	"encoding/json"

	"hostel-eats/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishStatus emits an order-status event keyed by order id so events
// for one order stay ordered within a partition.
func (p *KafkaPublisher) PublishStatus(ctx context.Context, msg domain.OrderStatusMessage) error {
	payload, _ := json.Marshal(msg)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: payload,
	})
}
