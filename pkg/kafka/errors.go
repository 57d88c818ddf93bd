package kafka

import "errors"

var (
	// ErrProducerClosed indicates the producer has been closed
	ErrProducerClosed = errors.New("kafka producer is closed")

	// ErrEmptyKey indicates the message key is empty
	ErrEmptyKey = errors.New("message key cannot be empty")

	// ErrEmptyValue indicates the message value is empty
	ErrEmptyValue = errors.New("message value cannot be empty")
)

// PublishError carries the topic and key of a message that could not be
// written, so callers can log it without unpacking the message again.
type PublishError struct {
	Topic string
	Key   string
	Err   error
}

func (e *PublishError) Error() string {
	return "publish to " + e.Topic + " (key " + e.Key + "): " + e.Err.Error()
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
