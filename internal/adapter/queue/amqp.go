package queue

import (
	"context"
	"fmt"
	"time"

	"monero-wallet-manager/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const dialTimeout = 10 * time.Second

// Broker implements ports.QueueBroker over RabbitMQ. Each Open dials a fresh
// connection scoped to one drain cycle; the consumer closes it when the cycle
// ends, so a broken broker connection never outlives a cycle.
type Broker struct {
	url       string
	queueName string
}

// NewBroker creates a RabbitMQ broker adapter for the named durable queue.
func NewBroker(url, queueName string) *Broker {
	return &Broker{url: url, queueName: queueName}
}

var _ ports.QueueBroker = (*Broker)(nil)

// Open dials the broker, opens a channel and declares the target queue
// (durable, idempotent).
func (b *Broker) Open(ctx context.Context) (ports.QueueSession, error) {
	conn, err := amqp.DialConfig(b.url, amqp.Config{
		Dial: amqp.DefaultDial(dialTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	q, err := ch.QueueDeclare(b.queueName, true, false, false, false, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", b.queueName, err)
	}

	return &session{conn: conn, ch: ch, queue: q.Name}, nil
}

type session struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// Get performs a non-blocking fetch of one message without auto-ack.
func (s *session) Get() (ports.Delivery, bool, error) {
	msg, ok, err := s.ch.Get(s.queue, false)
	if err != nil {
		return nil, false, fmt.Errorf("get from queue %s: %w", s.queue, err)
	}
	if !ok {
		return nil, false, nil
	}
	return &delivery{msg: msg}, true, nil
}

// Stats re-declares the queue (idempotent) to read its message and consumer
// counts.
func (s *session) Stats() (ports.QueueStats, error) {
	q, err := s.ch.QueueDeclare(s.queue, true, false, false, false, nil)
	if err != nil {
		return ports.QueueStats{}, fmt.Errorf("inspect queue %s: %w", s.queue, err)
	}
	return ports.QueueStats{
		Queue:         q.Name,
		MessageCount:  q.Messages,
		ConsumerCount: q.Consumers,
	}, nil
}

// Close tears down the connection (and with it the channel).
func (s *session) Close() error {
	return s.conn.Close()
}

type delivery struct {
	msg amqp.Delivery
}

func (d *delivery) Body() []byte { return d.msg.Body }

func (d *delivery) Ack() error { return d.msg.Ack(false) }

func (d *delivery) Nack(requeue bool) error { return d.msg.Nack(false, requeue) }
