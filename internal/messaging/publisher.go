package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"perfume-storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderPublisher writes OrderSubmitted events to a Kafka topic, keyed by the
// order reference.
type OrderPublisher struct {
	w      messageWriter
	topic  string
	logger *log.Logger
}

func NewOrderPublisher(brokers []string, topic string, logger *log.Logger) *OrderPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return newOrderPublisher(w, topic, logger)
}

func newOrderPublisher(w messageWriter, topic string, logger *log.Logger) *OrderPublisher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &OrderPublisher{w: w, topic: topic, logger: logger}
}

// PublishOrder blocks until the broker acknowledges the event or ctx ends.
func (p *OrderPublisher) PublishOrder(ctx context.Context, order domain.OrderDraft) error {
	env, err := NewOrderEnvelope(order)
	if err != nil {
		return err
	}
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.Reference),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(env.EventType)},
		},
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		p.logger.Printf("order publisher: topic=%s ref=%s error=%v", p.topic, order.Reference, err)
		return err
	}
	p.logger.Printf("order publisher: topic=%s ref=%s event=%s", p.topic, order.Reference, env.EventID)
	return nil
}

func (p *OrderPublisher) Close() error {
	return p.w.Close()
}

// NewOrderEnvelope builds the OrderSubmitted envelope for a draft.
func NewOrderEnvelope(order domain.OrderDraft) (Envelope, error) {
	lines := make([]OrderLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, OrderLine{
			ProductID:      l.Product.ID,
			Name:           l.Product.Name,
			Size:           string(l.Size),
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents(),
		})
	}
	payload, err := json.Marshal(OrderSubmitted{
		Reference:    order.Reference,
		CustomerName: order.Customer.FullName,
		Phone:        order.Customer.Phone,
		Address:      order.Customer.Address,
		City:         order.Customer.City,
		Notes:        order.Customer.Notes,
		Lines:        lines,
		TotalCents:   order.TotalCents,
		Currency:     "EUR",
	})
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal payload: %w", err)
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderSubmitted,
		EventVersion:  eventVersion,
		OccurredAt:    order.CreatedAt,
		Producer:      producerName,
		CorrelationID: order.Reference,
		Payload:       payload,
	}, nil
}
