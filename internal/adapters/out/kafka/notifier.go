// Package kafka implements the Notifier port on top of a Kafka topic.
// Each notification becomes one JSON message keyed by the recipient's profile
// id, so all notifications for one profile land on the same partition in order.
package kafka

import (
	"context"
	"encoding/json"

	"fleetyard/internal/core/domain/model/kernel"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the notifier needs.
// Narrowing the dependency keeps the adapter testable without a broker.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// message is the wire envelope consumed by the notification service.
type message struct {
	To       string         `json:"to"`
	Template string         `json:"template"`
	Payload  map[string]any `json:"payload"`
}

// Notifier publishes templated notifications to a Kafka topic.
type Notifier struct {
	writer Writer
}

// NewNotifier creates a notifier writing to the given broker and topic.
func NewNotifier(brokerHost, topic string) *Notifier {
	return &Notifier{
		writer: &skafka.Writer{
			Addr:     skafka.TCP(brokerHost),
			Topic:    topic,
			Balancer: &skafka.LeastBytes{},
		},
	}
}

// NewNotifierWithWriter creates a notifier over an injected writer.
func NewNotifierWithWriter(w Writer) *Notifier {
	return &Notifier{writer: w}
}

// Send publishes one notification. The caller has already committed its state
// changes; a failed write surfaces as an error without affecting them.
func (n *Notifier) Send(
	ctx context.Context, toProfileID kernel.UUID, template string, payload map[string]any,
) error {
	if err := toProfileID.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(message{
		To:       toProfileID.String(),
		Template: template,
		Payload:  payload,
	})
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, skafka.Message{
		Key:   []byte(toProfileID.String()),
		Value: value,
	})
}

// Close shuts down the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
