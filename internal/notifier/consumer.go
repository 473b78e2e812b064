package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"hostel-eats/internal/domain"
	"hostel-eats/internal/service"

	"github.com/segmentio/kafka-go"
)

// Consumer reads order status events and pushes them to the customer's
// registered devices.
type Consumer struct {
	Reader *kafka.Reader
	Notify service.NotificationServiceInterface
}

func NewConsumer(reader *kafka.Reader, notify service.NotificationServiceInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Notify: notify,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order status consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Order status consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.OrderStatusMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == domain.StatusEventType {
			c.ProcessStatus(ctx, msg)
		}
	}
}

func (c *Consumer) ProcessStatus(ctx context.Context, msg domain.OrderStatusMessage) {
	if msg.Phone == "" {
		log.Printf("Skipping status event without phone: order=%s", msg.OrderID)
		return
	}
	log.Printf("Processing status event: OrderID=%s, Status=%s", msg.OrderID, msg.Status)

	title, body := statusNotification(msg)
	result, err := c.Notify.NotifyUser(ctx, msg.Phone, title, body)
	if err != nil {
		log.Printf("Error notifying user %s: %v", msg.Phone, err)
		return
	}

	log.Printf("Delivered %d/%d notifications for order %s (pruned %d)",
		result.Delivered, result.Attempted, msg.OrderID, result.Pruned)
}

func statusNotification(msg domain.OrderStatusMessage) (string, string) {
	switch msg.Status {
	case domain.StatusDispatched:
		return "Order on the way", fmt.Sprintf("Your order %s is out for delivery.", msg.OrderID)
	case domain.StatusCompleted:
		return "Order delivered", fmt.Sprintf("Your order %s has been delivered. Enjoy!", msg.OrderID)
	default:
		return "Order update", fmt.Sprintf("Your order %s is now %s.", msg.OrderID, msg.Status)
	}
}
