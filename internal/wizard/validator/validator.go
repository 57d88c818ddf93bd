package validator

import (
	"transferbook/pkg/locale"
	"transferbook/pkg/logger"
	"transferbook/pkg/model"
	"transferbook/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

const MinPhoneDigits = 10

// Rule is one row of a step's validation table. The first failing rule for a
// field decides that field's message.
type Rule struct {
	Field      model.Field
	MessageKey string
	Modes      []model.Mode // empty means every mode
	Valid      func(v *StepValidator, form *model.BookingFormState) bool
}

func (r Rule) appliesTo(mode model.Mode) bool {
	if len(r.Modes) == 0 {
		return true
	}
	for _, m := range r.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Failures maps each invalid field to the message key describing it.
type Failures map[model.Field]string

func (f Failures) Valid() bool {
	return len(f) == 0
}

// Render localizes the failures into a fresh error map.
func (f Failures) Render(t locale.Translator) model.ValidationErrors {
	out := make(model.ValidationErrors, len(f))
	for field, key := range f {
		out[field] = t.Message(key)
	}
	return out
}

type StepValidator struct {
	validate *validator.Validate
	rules    map[model.Step][]Rule
	logger   *logger.Logger
}

func NewStepValidator(log *logger.Logger) *StepValidator {
	v := &StepValidator{
		validate: validator.New(),
		rules:    DefaultRules(),
		logger:   log,
	}
	log.Info("Booking step validator initialized successfully", "steps", len(v.rules))
	return v
}

// Validate checks only the fields owned by step under the form's current mode.
func (v *StepValidator) Validate(step model.Step, form *model.BookingFormState) Failures {
	failures := Failures{}
	mode := form.Mode()

	for _, rule := range v.rules[step] {
		if !rule.appliesTo(mode) {
			continue
		}
		if _, failed := failures[rule.Field]; failed {
			continue
		}
		if !rule.Valid(v, form) {
			failures[rule.Field] = rule.MessageKey
		}
	}

	if !failures.Valid() {
		v.logger.Debug("Booking step validation failed", "step", step.String(), "mode", string(mode), "fields", len(failures))
	}
	return failures
}

func (v *StepValidator) Rules(step model.Step) []Rule {
	return v.rules[step]
}

func (v *StepValidator) required(value string) bool {
	return v.validate.Var(value, "required") == nil
}

func (v *StepValidator) email(value string) bool {
	return v.validate.Var(value, "required,email") == nil
}

func phoneHasEnoughDigits(phone string) bool {
	return len(sanitizer.DigitsOnly(phone)) >= MinPhoneDigits
}
