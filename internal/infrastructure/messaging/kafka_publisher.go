package messaging

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/segmentio/kafka-go"

	"studio_orders/internal/domain/entities"
)

const defaultOrderEventsTopic = "orders.submitted"

// KafkaOrderPublisher pushes order events onto a Kafka topic so the
// management tooling can pick them up.
type KafkaOrderPublisher struct {
	writer *kafka.Writer
}

func NewKafkaOrderPublisher() *KafkaOrderPublisher {
	broker := getenvDefault("KAFKA_BROKER", "localhost:9092")
	topic := getenvDefault("ORDER_EVENTS_TOPIC", defaultOrderEventsTopic)
	return &KafkaOrderPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

type orderEvent struct {
	OrderID      string              `json:"orderId"`
	CustomerID   string              `json:"customerId"`
	Status       string              `json:"status"`
	Priority     string              `json:"priority"`
	ProjectTitle string              `json:"projectTitle"`
	Total        entities.PriceRange `json:"total"`
	SubmittedAt  time.Time           `json:"submittedAt"`
}

// PublishOrderSubmitted emits one event per submitted order, keyed by the
// order id so the topic preserves per-order ordering.
func (p *KafkaOrderPublisher) PublishOrderSubmitted(ctx context.Context, order entities.Order) error {
	data, err := json.Marshal(orderEvent{
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		Status:       string(order.Status),
		Priority:     string(order.Priority),
		ProjectTitle: order.Data.ProjectDetails.Title,
		Total:        order.Total,
		SubmittedAt:  order.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: data,
		Time:  time.Now(),
	})
	if err != nil {
		log.Printf("[messaging][kafka] publish failed order_id=%s err=%v", order.ID, err)
	}
	return err
}

func (p *KafkaOrderPublisher) Close() error {
	return p.writer.Close()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
