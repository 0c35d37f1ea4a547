package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// dialTimeout bounds how long a write request waits on an unreachable
// broker.
const dialTimeout = 3 * time.Second

// Publisher sends DirectoryEvents to RabbitMQ.  A nil *Publisher is valid
// and drops every event, which is how publishing is disabled.
type Publisher struct {
	url string
}

// NewPublisher returns a publisher for the broker at url, or nil when url
// is empty.
func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

// Publish sends ev to the activity queue as a persistent JSON message.
// Writes are rare, so each call dials its own connection.
func (p *Publisher) Publish(ctx context.Context, ev DirectoryEvent) error {
	if p == nil {
		return nil
	}
	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := declareActivityQueue(ch); err != nil {
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         ev.Kind,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", ActivityQueue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}

// declareActivityQueue makes sure the durable queue exists (idempotent).
func declareActivityQueue(ch *amqp.Channel) error {
	if _, err := ch.QueueDeclare(ActivityQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	return nil
}
