package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes booking events to RabbitMQ.  A connection is
// opened per event; bookings are rare and interactive, so there is no
// point keeping one open between prompts.
type AMQPPublisher struct {
	URL string
}

// NewAMQPPublisher returns a publisher for the broker at url.
func NewAMQPPublisher(url string) *AMQPPublisher { return &AMQPPublisher{URL: url} }

// Publish sends ev to the queue matching its kind.  Missing EventID and
// OccurredAt are filled in.  Errors are logged and returned so the caller
// can ignore them.
func (p *AMQPPublisher) Publish(ctx context.Context, ev BookingEvent) error {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	if ev.OccurredAt == "" {
		ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		slog.Warn("rabbitmq: dial failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		slog.Warn("rabbitmq: channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	queue := ev.QueueName()
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		slog.Warn("rabbitmq: queue declare failed", "queue", queue, "error", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.EventID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		slog.Warn("rabbitmq: publish failed", "queue", queue, "error", err)
		return err
	}
	slog.Debug("booking event published", "queue", queue, "event_id", ev.EventID)
	return nil
}
