package notifier

import (
	"context"
	"time"

	"transferbook/pkg/logger"
	"transferbook/pkg/model"
)

// LoggingNotifier records the channel, duration and outcome of every delivery.
type LoggingNotifier struct {
	next Channel
	log  *logger.Logger
}

func WithLogging(next Channel, log *logger.Logger) *LoggingNotifier {
	return &LoggingNotifier{next: next, log: log}
}

func (n *LoggingNotifier) Name() string {
	return n.next.Name()
}

func (n *LoggingNotifier) Notify(ctx context.Context, payload *model.BookingPayload) error {
	start := time.Now()
	err := n.next.Notify(ctx, payload)
	duration := time.Since(start)

	if err != nil {
		n.log.Error("Lead delivery failed",
			"channel", n.next.Name(),
			"session_id", payload.SessionID,
			"duration", duration,
			"error", err,
		)
		return err
	}

	n.log.Info("Lead delivered",
		"channel", n.next.Name(),
		"session_id", payload.SessionID,
		"booking_type", payload.BookingType,
		"duration", duration,
	)
	return nil
}
