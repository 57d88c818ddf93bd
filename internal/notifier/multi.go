package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"transferbook/pkg/logger"
	"transferbook/pkg/model"
)

// Channel is a named notifier that can take part in a fan-out.
type Channel interface {
	Name() string
	Notify(ctx context.Context, payload *model.BookingPayload) error
}

// MultiNotifier delivers to every channel concurrently. A lead counts as
// delivered when at least one channel accepted it.
type MultiNotifier struct {
	channels []Channel
	log      *logger.Logger
}

func NewMultiNotifier(log *logger.Logger, channels ...Channel) *MultiNotifier {
	return &MultiNotifier{channels: channels, log: log}
}

func (m *MultiNotifier) Name() string {
	return "multi"
}

func (m *MultiNotifier) Notify(ctx context.Context, payload *model.BookingPayload) error {
	if len(m.channels) == 0 {
		return ErrNoChannels
	}

	errs := make([]error, len(m.channels))
	var wg sync.WaitGroup
	for i, ch := range m.channels {
		wg.Add(1)
		go func(i int, ch Channel) {
			defer wg.Done()
			if err := ch.Notify(ctx, payload); err != nil {
				errs[i] = fmt.Errorf("%s: %w", ch.Name(), err)
			}
		}(i, ch)
	}
	wg.Wait()

	delivered := 0
	for _, err := range errs {
		if err == nil {
			delivered++
		}
	}
	if delivered == 0 {
		return errors.Join(errs...)
	}

	for _, err := range errs {
		if err != nil {
			m.log.Warn("Notifier channel failed, lead delivered elsewhere",
				"session_id", payload.SessionID,
				"error", err,
			)
		}
	}
	return nil
}

var ErrNoChannels = errors.New("no notifier channels configured")
