package mq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/marsestates/brokerage-api/internal/config"
)

// Publisher pushes domain events onto a rabbitmq queue. A nil Publisher
// is valid and drops every event, so event publishing stays optional.
type Publisher struct {
	conn  *amqp.Connection
	queue string
}

// New dials rabbitmq and declares the event queue. Returns (nil, nil)
// when no URL is configured.
func New(cfg *config.Config) (*Publisher, error) {
	if cfg.RabbitMQ.URL == "" {
		return nil, nil
	}
	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if _, err := ch.QueueDeclare(cfg.RabbitMQ.Queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, queue: cfg.RabbitMQ.Queue}, nil
}

// Publish sends a JSON event to the queue. Each publish uses a fresh
// channel; channels are not safe for concurrent use.
func (p *Publisher) Publish(ctx context.Context, event interface{}) error {
	if p == nil {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// Close tears down the underlying connection.
func (p *Publisher) Close() error {
	if p == nil || p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
