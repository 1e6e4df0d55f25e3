package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/carson-networks/payment-ledger/events"
)

var _ events.IEventPublisher = (*Publisher)(nil)

const defaultPublishTimeout = 10 * time.Second

// Publisher publishes ledger events to Kafka, one topic per event type.
type Publisher struct {
	writer  *kafka.Writer
	timeout time.Duration
}

// NewPublisher creates a Publisher connected to the given brokers.
func NewPublisher(brokers []string) *Publisher {
	return NewPublisherWithTimeout(brokers, defaultPublishTimeout)
}

// NewPublisherWithTimeout creates a Publisher whose writes give up after
// the given timeout. Publishing happens after the transfer committed, so
// a hung broker must not stall the caller indefinitely.
func NewPublisherWithTimeout(brokers []string, timeout time.Duration) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		timeout: timeout,
	}
}

// Publish JSON-encodes the event and writes it to the topic, bounded by
// the publisher's timeout.
func (p *Publisher) Publish(topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	return p.writer.WriteMessages(
		ctx,
		kafka.Message{
			Topic: topic,
			Value: data,
		},
	)
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
