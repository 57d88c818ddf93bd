package service

import (
	"context"
	"errors"
	"time"

	"transferbook/internal/submission"
	"transferbook/internal/wizard"
	wizarderrors "transferbook/internal/wizard/errors"
	wizardvalidator "transferbook/internal/wizard/validator"
	apperrors "transferbook/pkg/errors"
	"transferbook/pkg/locale"
	"transferbook/pkg/logger"
	"transferbook/pkg/model"
	"transferbook/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

type CreateSessionRequest struct {
	SelectedTour string `json:"selectedTour" validate:"max=200"`
	Language     string `json:"language" validate:"omitempty,alpha,len=2"`
}

type SubmitResult struct {
	Notification submission.Notification `json:"notification"`
	Session      wizard.Snapshot         `json:"session"`
}

type SessionService interface {
	// Create starts a new session. fallbackLangs are tried after req.Language.
	Create(ctx context.Context, req CreateSessionRequest, fallbackLangs ...string) (wizard.Snapshot, error)
	Get(ctx context.Context, id string) (wizard.Snapshot, error)
	Update(ctx context.Context, id string, update model.FormUpdate) (wizard.Snapshot, error)
	Next(ctx context.Context, id string) (wizard.Snapshot, error)
	Prev(ctx context.Context, id string) (wizard.Snapshot, error)
	Reset(ctx context.Context, id string) (wizard.Snapshot, error)
	Submit(ctx context.Context, id string) (SubmitResult, error)
	Delete(ctx context.Context, id string) error
}

type sessionService struct {
	store     wizard.SessionStore
	steps     *wizardvalidator.StepValidator
	catalog   *locale.Catalog
	submitter *submission.Submitter
	location  *time.Location
	validate  *validator.Validate
	log       *logger.Logger
}

func NewSessionService(
	store wizard.SessionStore,
	steps *wizardvalidator.StepValidator,
	catalog *locale.Catalog,
	submitter *submission.Submitter,
	location *time.Location,
	log *logger.Logger,
) SessionService {
	if location == nil {
		location = time.Local
	}
	return &sessionService{
		store:     store,
		steps:     steps,
		catalog:   catalog,
		submitter: submitter,
		location:  location,
		validate:  validator.New(),
		log:       log,
	}
}

func (s *sessionService) Create(ctx context.Context, req CreateSessionRequest, fallbackLangs ...string) (wizard.Snapshot, error) {
	req.SelectedTour = sanitizer.TrimAndNormalize(req.SelectedTour)
	if err := s.validate.Struct(req); err != nil {
		return wizard.Snapshot{}, apperrors.Validation("Invalid session request", map[string]any{
			"error": err.Error(),
		})
	}

	langs := append([]string{req.Language}, fallbackLangs...)
	session := wizard.NewSession(s.steps, s.catalog.Translator(langs...), wizard.WithTour(req.SelectedTour))
	s.store.Put(session)

	s.log.Info("Booking session created",
		"session_id", session.ID(),
		"mode", session.Mode(),
		"language", session.Language(),
	)
	return session.Snapshot(), nil
}

func (s *sessionService) Get(ctx context.Context, id string) (wizard.Snapshot, error) {
	session, err := s.session(id)
	if err != nil {
		return wizard.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *sessionService) Update(ctx context.Context, id string, update model.FormUpdate) (wizard.Snapshot, error) {
	session, err := s.session(id)
	if err != nil {
		return wizard.Snapshot{}, err
	}

	// JSON decoding parses dates in time.Local; re-read the raw input in the
	// business time zone.
	if update.Date != nil {
		date := model.ParseTravelDate(update.Date.Raw, s.location)
		update.Date = &date
	}
	sanitizer.SanitizeFormUpdate(&update)

	session.Update(update)
	return session.Snapshot(), nil
}

func (s *sessionService) Next(ctx context.Context, id string) (wizard.Snapshot, error) {
	session, err := s.session(id)
	if err != nil {
		return wizard.Snapshot{}, err
	}

	if !session.NextStep() {
		snapshot := session.Snapshot()
		s.log.Debug("Step validation failed",
			"session_id", id,
			"step", snapshot.Step,
			"fields", len(snapshot.Errors),
		)
		return snapshot, apperrors.Validation(
			session.Translator().Message(locale.KeyValidationSummary),
			map[string]any{"errors": snapshot.Errors, "step": snapshot.Step},
		)
	}
	return session.Snapshot(), nil
}

func (s *sessionService) Prev(ctx context.Context, id string) (wizard.Snapshot, error) {
	session, err := s.session(id)
	if err != nil {
		return wizard.Snapshot{}, err
	}
	session.PrevStep()
	return session.Snapshot(), nil
}

func (s *sessionService) Reset(ctx context.Context, id string) (wizard.Snapshot, error) {
	session, err := s.session(id)
	if err != nil {
		return wizard.Snapshot{}, err
	}
	session.ResetForm()
	return session.Snapshot(), nil
}

func (s *sessionService) Submit(ctx context.Context, id string) (SubmitResult, error) {
	session, err := s.session(id)
	if err != nil {
		return SubmitResult{}, err
	}

	notification, err := s.submitter.Submit(ctx, session)
	switch {
	case errors.Is(err, wizarderrors.ErrNotReady):
		return SubmitResult{}, apperrors.PreconditionFailed("Booking is not ready for submission").WithCause(err)
	case errors.Is(err, wizarderrors.ErrSubmissionInProgress):
		return SubmitResult{}, apperrors.Conflict("Booking submission already in progress").WithCause(err)
	case err != nil:
		return SubmitResult{}, apperrors.Internal("Booking submission failed", err)
	}

	return SubmitResult{Notification: notification, Session: session.Snapshot()}, nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return s.mapStoreError(id, err)
	}
	s.log.Info("Booking session deleted", "session_id", id)
	return nil
}

func (s *sessionService) session(id string) (*wizard.Session, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, s.mapStoreError(id, err)
	}
	return session, nil
}

func (s *sessionService) mapStoreError(id string, err error) error {
	if errors.Is(err, wizarderrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking session", id).WithCause(err)
	}
	return apperrors.Internal("Session store failure", err)
}
