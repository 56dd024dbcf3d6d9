package service

import (
	"context"
	"fmt"
	"time"

	"monero-wallet-manager/internal/core/domain"
	"monero-wallet-manager/internal/core/ports"

	"github.com/rs/zerolog"
)

// minPollInterval is the floor for the consumer's sleep between drain
// cycles. It keeps a misconfigured near-zero interval from turning a broker
// outage into a tight retry loop.
const minPollInterval = 5 * time.Second

// Consumer drains the withdrawal queue in strictly sequential cycles: one
// cycle completes (or halts on failure) before the next begins.
type Consumer struct {
	broker    ports.QueueBroker
	processor ports.WithdrawalProcessor
	interval  time.Duration
	log       zerolog.Logger
}

// NewConsumer creates a Consumer polling at the given interval, clamped to
// the minimum floor.
func NewConsumer(broker ports.QueueBroker, processor ports.WithdrawalProcessor, interval time.Duration, log zerolog.Logger) *Consumer {
	if interval < minPollInterval {
		interval = minPollInterval
	}
	return &Consumer{
		broker:    broker,
		processor: processor,
		interval:  interval,
		log:       log,
	}
}

// Run repeats drain cycles until the context is cancelled. A failed cycle is
// logged and retried after the poll interval; nothing escapes the loop, so a
// broker outage never terminates the background task.
func (c *Consumer) Run(ctx context.Context) {
	c.log.Info().Dur("interval", c.interval).Msg("withdrawal consumer started")
	for {
		if err := c.Drain(ctx); err != nil {
			c.log.Error().Err(err).Msg("drain cycle failed")
		}
		select {
		case <-ctx.Done():
			c.log.Info().Msg("withdrawal consumer stopped")
			return
		case <-time.After(c.interval):
		}
	}
}

// Drain performs one bounded pass over the queue: fetch one message at a
// time until the queue is empty or a message fails.
//
// Acknowledgment semantics: successfully processed messages and messages of
// unrecognized type are positively acknowledged (the latter are never
// retried). Any parse or processing failure negatively acknowledges the
// message with requeue and halts the cycle, so a poison message throttles to
// one attempt per cycle instead of spinning.
func (c *Consumer) Drain(ctx context.Context) error {
	session, err := c.broker.Open(ctx)
	if err != nil {
		return fmt.Errorf("open queue session: %w", err)
	}
	defer session.Close()

	for {
		delivery, ok, err := session.Get()
		if err != nil {
			return fmt.Errorf("fetch message: %w", err)
		}
		if !ok {
			return nil
		}

		if err := c.dispatch(ctx, delivery); err != nil {
			if nackErr := delivery.Nack(true); nackErr != nil {
				c.log.Error().Err(nackErr).Msg("nack failed")
			}
			return fmt.Errorf("dispatch message: %w", err)
		}

		if err := delivery.Ack(); err != nil {
			return fmt.Errorf("ack message: %w", err)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, delivery ports.Delivery) error {
	msg, err := domain.ParseWithdrawalMessage(delivery.Body())
	if err != nil {
		return fmt.Errorf("parse message body: %w", err)
	}

	if msg.Type != domain.MessageTypeWithdraw {
		c.log.Warn().Str("type", msg.Type).Msg("unrecognized message type, acknowledging without retry")
		return nil
	}

	_, err = c.processor.Process(ctx, msg)
	return err
}

// Stats opens a session to report the queue's broker-side state. Used by the
// admin surface.
func (c *Consumer) Stats(ctx context.Context) (ports.QueueStats, error) {
	session, err := c.broker.Open(ctx)
	if err != nil {
		return ports.QueueStats{}, fmt.Errorf("open queue session: %w", err)
	}
	defer session.Close()
	return session.Stats()
}
