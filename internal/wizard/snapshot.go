package wizard

import "transferbook/pkg/model"

// Snapshot is a consistent, read-only view of a session for rendering.
type Snapshot struct {
	ID         string                 `json:"id"`
	Step       model.Step             `json:"step"`
	StepIndex  int                    `json:"stepIndex"`
	StepCount  int                    `json:"stepCount"`
	Mode       model.Mode             `json:"mode"`
	Language   string                 `json:"language"`
	Form       model.BookingFormState `json:"form"`
	Errors     model.ValidationErrors `json:"errors"`
	Completed  map[model.Step]bool    `json:"completed"`
	IsLastStep bool                   `json:"isLastStep"`
	CanProceed bool                   `json:"canProceed"`
	Submitting bool                   `json:"submitting"`
}

func (s *Session) Snapshot() Snapshot {
	s.lockAndTouch()
	defer s.unlock()

	completed := make(map[model.Step]bool, len(model.Steps))
	for _, step := range model.Steps {
		completed[step] = isStepComplete(&s.form, step)
	}

	return Snapshot{
		ID:         s.id,
		Step:       s.step,
		StepIndex:  int(s.step),
		StepCount:  len(model.Steps),
		Mode:       s.form.Mode(),
		Language:   s.translator.Language(),
		Form:       s.form.Clone(),
		Errors:     s.errors.Clone(),
		Completed:  completed,
		IsLastStep: s.step == model.LastStep,
		CanProceed: completed[s.step] && !s.submitting,
		Submitting: s.submitting,
	}
}
