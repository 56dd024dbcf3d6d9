package ports

import "context"

// QueueStats describes the declared queue's broker-side state.
type QueueStats struct {
	Queue         string `json:"queue"`
	MessageCount  int    `json:"message_count"`
	ConsumerCount int    `json:"consumer_count"`
}

// Delivery is one fetched queue message awaiting acknowledgment.
type Delivery interface {
	Body() []byte
	Ack() error
	// Nack rejects the delivery; requeue controls whether the broker
	// redelivers it.
	Nack(requeue bool) error
}

// QueueSession is an open connection/channel pair with the target queue
// declared. Sessions are cheap and scoped to a single drain cycle.
type QueueSession interface {
	// Get performs a non-blocking fetch of one message. ok is false when the
	// queue is empty.
	Get() (d Delivery, ok bool, err error)
	Stats() (QueueStats, error)
	Close() error
}

// QueueBroker opens sessions against the message broker. Declaring the queue
// on every open is idempotent.
type QueueBroker interface {
	Open(ctx context.Context) (QueueSession, error)
}
