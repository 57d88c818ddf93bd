package validator

import (
	"transferbook/pkg/locale"
	"transferbook/pkg/model"
)

var transferOnly = []model.Mode{model.ModeTransfer}

// DefaultRules returns the per-step validation tables. TravelPreferences has
// no rules: counters are clamped on input and everything else is optional.
func DefaultRules() map[model.Step][]Rule {
	return map[model.Step][]Rule{
		model.StepPersonalInfo: {
			{
				Field:      model.FieldFullName,
				MessageKey: locale.KeyFullNameRequired,
				Valid: func(v *StepValidator, f *model.BookingFormState) bool {
					return v.required(f.FullName)
				},
			},
			{
				Field:      model.FieldEmail,
				MessageKey: locale.KeyEmailInvalid,
				Valid: func(v *StepValidator, f *model.BookingFormState) bool {
					return v.email(f.Email)
				},
			},
			{
				Field:      model.FieldPhone,
				MessageKey: locale.KeyPhoneInvalid,
				Valid: func(_ *StepValidator, f *model.BookingFormState) bool {
					return phoneHasEnoughDigits(f.Phone)
				},
			},
			{
				Field:      model.FieldCountryCode,
				MessageKey: locale.KeyCountryCodeRequired,
				Valid: func(v *StepValidator, f *model.BookingFormState) bool {
					return v.required(f.CountryCode)
				},
			},
		},
		model.StepJourneyDetails: {
			{
				Field:      model.FieldPickupLocation,
				MessageKey: locale.KeyPickupRequired,
				Valid: func(_ *StepValidator, f *model.BookingFormState) bool {
					return f.PickupLocation.IsSelected()
				},
			},
			{
				Field:      model.FieldDropoffLocation,
				MessageKey: locale.KeyDropoffRequired,
				Modes:      transferOnly,
				Valid: func(_ *StepValidator, f *model.BookingFormState) bool {
					return f.DropoffLocation.IsSelected()
				},
			},
			{
				Field:      model.FieldDate,
				MessageKey: locale.KeyDateRequired,
				Valid: func(_ *StepValidator, f *model.BookingFormState) bool {
					return f.Date != nil && !f.Date.IsEmpty()
				},
			},
			{
				Field:      model.FieldDate,
				MessageKey: locale.KeyDateInvalid,
				Valid: func(_ *StepValidator, f *model.BookingFormState) bool {
					return f.Date != nil && f.Date.IsValid()
				},
			},
		},
		model.StepTravelPreferences: {},
	}
}
