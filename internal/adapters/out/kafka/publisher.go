// Package kafka publishes order status changes to a Kafka topic, keyed by order id so
// that every change of one order lands on the same partition in order.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ErrPublisherClosed = errors.New("order event publisher is closed")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	MaxAttempts  int
}

func (c Config) Validate() error {
	if len(c.Brokers) == 0 {
		return errs.NewValueIsRequiredError("brokers")
	}
	if c.Topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}
	return nil
}

// OrderEventPublisher writes order.StatusChanged events synchronously.
type OrderEventPublisher struct {
	writer messageWriter
	topic  string
	closed atomic.Bool
}

func NewOrderEventPublisher(cfg Config, logger *zap.Logger) (*OrderEventPublisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 10 * time.Millisecond
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}

	sugar := logger.Sugar()
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            cfg.MaxAttempts,
		AllowAutoTopicCreation: true,
		Transport: &kafka.Transport{
			Dial: (&net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			sugar.Errorf("kafka writer: "+msg, args...)
		}),
	}

	return newOrderEventPublisher(writer, cfg.Topic), nil
}

func newOrderEventPublisher(writer messageWriter, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer, topic: topic}
}

// Publish writes all events in one batch.
func (p *OrderEventPublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	if p.closed.Load() {
		return ErrPublisherClosed
	}
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := buildMessage(event)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %d order events to %s: %w", len(msgs), p.topic, err)
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}
