package notifier

import (
	"context"
	"fmt"

	"transferbook/pkg/kafka"
	"transferbook/pkg/model"
)

const (
	EventTypeLeadSubmitted = "booking.lead.submitted"
	leadSchemaVersion      = "1"
)

// Publisher is satisfied by *kafka.Producer.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// KafkaNotifier publishes each lead as a JSON event keyed by session id.
type KafkaNotifier struct {
	publisher Publisher
	source    string
}

func NewKafkaNotifier(publisher Publisher, source string) *KafkaNotifier {
	return &KafkaNotifier{publisher: publisher, source: source}
}

func (n *KafkaNotifier) Name() string {
	return "kafka"
}

func (n *KafkaNotifier) Notify(ctx context.Context, payload *model.BookingPayload) error {
	msg, err := kafka.NewMessage().
		WithKey(payload.SessionID).
		WithValue(payload).
		WithEventID("").
		WithEventType(EventTypeLeadSubmitted).
		WithCorrelationID(payload.SessionID).
		WithSchemaVersion(leadSchemaVersion).
		WithSource(n.source).
		Build()
	if err != nil {
		return fmt.Errorf("build lead message: %w", err)
	}

	if err := n.publisher.Publish(ctx, msg); err != nil {
		return fmt.Errorf("publish lead: %w", err)
	}
	return nil
}
