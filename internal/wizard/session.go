package wizard

import (
	"fmt"
	"sync"
	"time"

	wizarderrors "transferbook/internal/wizard/errors"
	"transferbook/internal/wizard/validator"
	"transferbook/pkg/locale"
	"transferbook/pkg/model"

	"github.com/google/uuid"
)

// Session is one visitor's booking wizard: the form, the active step and the
// last validation errors. Each booking interaction owns its own Session; the
// mutex only serializes requests that race on the same handle.
type Session struct {
	mu sync.Mutex

	id         string
	seededTour string

	form       model.BookingFormState
	step       model.Step
	errors     model.ValidationErrors
	submitting bool

	validator  *validator.StepValidator
	translator locale.Translator

	now       func() time.Time
	createdAt time.Time
	touchedAt time.Time
}

type Option func(*Session)

// WithTour seeds selectedTour, putting the session in tour-booking mode for
// its whole lifetime, resets included.
func WithTour(tour string) Option {
	return func(s *Session) {
		s.seededTour = tour
	}
}

func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func NewSession(v *validator.StepValidator, t locale.Translator, opts ...Option) *Session {
	if v == nil || t == nil {
		panic(fmt.Errorf("%w: validator and translator are required", wizarderrors.ErrNoSession))
	}
	s := &Session{
		validator:  v,
		translator: t,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	s.form = model.DefaultFormState(s.seededTour)
	s.step = model.FirstStep
	s.errors = model.ValidationErrors{}
	s.createdAt = s.now()
	s.touchedAt = s.createdAt
	return s
}

func (s *Session) lock() {
	if s == nil || s.validator == nil {
		panic(wizarderrors.ErrNoSession)
	}
	s.mu.Lock()
}

// lockAndTouch is used by every visitor-driven operation so idle expiry only
// counts real activity.
func (s *Session) lockAndTouch() {
	s.lock()
	s.touchedAt = s.now()
}

func (s *Session) unlock() {
	s.mu.Unlock()
}

func (s *Session) ID() string {
	s.lock()
	defer s.unlock()
	return s.id
}

func (s *Session) Language() string {
	s.lock()
	defer s.unlock()
	return s.translator.Language()
}

func (s *Session) Translator() locale.Translator {
	s.lock()
	defer s.unlock()
	return s.translator
}

func (s *Session) Mode() model.Mode {
	s.lock()
	defer s.unlock()
	return s.form.Mode()
}

// State returns a copy of the form; mutating it does not affect the session.
func (s *Session) State() model.BookingFormState {
	s.lock()
	defer s.unlock()
	return s.form.Clone()
}

// Update merges the partial form into the current state without validating it.
func (s *Session) Update(u model.FormUpdate) {
	s.lockAndTouch()
	defer s.unlock()
	s.form.Apply(u)
}

func (s *Session) CurrentStep() model.Step {
	s.lock()
	defer s.unlock()
	return s.step
}

func (s *Session) Errors() model.ValidationErrors {
	s.lock()
	defer s.unlock()
	return s.errors.Clone()
}

func (s *Session) IsLastStep() bool {
	s.lock()
	defer s.unlock()
	return s.step == model.LastStep
}

func (s *Session) Submitting() bool {
	s.lock()
	defer s.unlock()
	return s.submitting
}

func (s *Session) TouchedAt() time.Time {
	s.lock()
	defer s.unlock()
	return s.touchedAt
}
