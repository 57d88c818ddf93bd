package wizard

import (
	wizarderrors "transferbook/internal/wizard/errors"
	"transferbook/pkg/model"
)

// NextStep validates the active step. On success it advances (staying put on
// the last step) and clears the errors; otherwise the new errors replace the
// old ones and the step is unchanged.
func (s *Session) NextStep() bool {
	s.lockAndTouch()
	defer s.unlock()

	failures := s.validator.Validate(s.step, &s.form)
	if !failures.Valid() {
		s.errors = failures.Render(s.translator)
		return false
	}

	s.step = s.step.Next()
	s.errors = model.ValidationErrors{}
	return true
}

// PrevStep never consults validation.
func (s *Session) PrevStep() {
	s.lockAndTouch()
	defer s.unlock()

	s.step = s.step.Prev()
	s.errors = model.ValidationErrors{}
}

// SetStep jumps without validation; meant for programmatic resets.
func (s *Session) SetStep(step model.Step) error {
	if !step.Valid() {
		return wizarderrors.ErrInvalidStep
	}
	s.lockAndTouch()
	defer s.unlock()

	s.step = step
	return nil
}

// IsStepComplete is the lightweight readiness check that drives the
// Next/Submit affordance. Looser than validation: email
// grammar and phone length are only enforced by NextStep.
func (s *Session) IsStepComplete(step model.Step) bool {
	s.lock()
	defer s.unlock()
	return isStepComplete(&s.form, step)
}

func (s *Session) CompletedSteps() map[model.Step]bool {
	s.lock()
	defer s.unlock()

	out := make(map[model.Step]bool, len(model.Steps))
	for _, step := range model.Steps {
		out[step] = isStepComplete(&s.form, step)
	}
	return out
}

func isStepComplete(f *model.BookingFormState, step model.Step) bool {
	switch step {
	case model.StepPersonalInfo:
		return f.FullName != "" && f.Email != "" && f.Phone != ""
	case model.StepJourneyDetails:
		complete := f.PickupLocation.IsSelected() && f.Date != nil && !f.Date.IsEmpty()
		if !f.IsTour() {
			complete = complete && f.DropoffLocation.IsSelected()
		}
		return complete
	case model.StepTravelPreferences:
		return true
	default:
		return false
	}
}

// ResetForm restores defaults (keeping a seeded tour), returns to the first
// step and clears errors.
func (s *Session) ResetForm() {
	s.lockAndTouch()
	defer s.unlock()

	s.form = model.DefaultFormState(s.seededTour)
	s.step = model.FirstStep
	s.errors = model.ValidationErrors{}
}

// BeginSubmit marks the session as submitting and returns the form snapshot
// to dispatch. Every successful call must be paired with EndSubmit.
func (s *Session) BeginSubmit() (model.BookingFormState, error) {
	s.lockAndTouch()
	defer s.unlock()

	if s.submitting {
		return model.BookingFormState{}, wizarderrors.ErrSubmissionInProgress
	}
	if s.step != model.LastStep || !isStepComplete(&s.form, s.step) {
		return model.BookingFormState{}, wizarderrors.ErrNotReady
	}
	s.submitting = true
	return s.form.Clone(), nil
}

func (s *Session) EndSubmit() {
	s.lockAndTouch()
	defer s.unlock()
	s.submitting = false
}
