package submission

import (
	"context"
	"time"

	"transferbook/internal/wizard"
	"transferbook/pkg/locale"
	"transferbook/pkg/logger"
	"transferbook/pkg/model"
)

// Notifier delivers one booking lead. Implementations make a single attempt.
type Notifier interface {
	Notify(ctx context.Context, payload *model.BookingPayload) error
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is the toast shown to the visitor after a submit attempt.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

func (n Notification) Succeeded() bool {
	return n.Kind == NotificationSuccess
}

type Submitter struct {
	notifier Notifier
	log      *logger.Logger
	now      func() time.Time
}

func NewSubmitter(notifier Notifier, log *logger.Logger) *Submitter {
	return &Submitter{
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Submit dispatches the session's form once. Only precondition errors
// (ErrNotReady, ErrSubmissionInProgress) are returned; a delivery failure is
// logged and reported as an error notification with the form left intact.
func (s *Submitter) Submit(ctx context.Context, session *wizard.Session) (Notification, error) {
	form, err := session.BeginSubmit()
	if err != nil {
		return Notification{}, err
	}
	defer session.EndSubmit()

	translator := session.Translator()
	payload := BuildPayload(session.ID(), translator.Language(), form, s.now())

	if err := s.notifier.Notify(ctx, payload); err != nil {
		s.log.Error("Booking submission failed",
			"session_id", payload.SessionID,
			"booking_type", payload.BookingType,
			"error", err,
		)
		return Notification{Kind: NotificationError, Message: translator.Message(locale.KeySubmitError)}, nil
	}

	s.log.Info("Booking submitted",
		"session_id", payload.SessionID,
		"booking_type", payload.BookingType,
		"language", payload.Language,
	)
	return Notification{Kind: NotificationSuccess, Message: translator.Message(locale.KeySubmitSuccess)}, nil
}
