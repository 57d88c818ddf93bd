package validator

import (
	"testing"
	"time"

	"transferbook/pkg/locale"
	"transferbook/pkg/logger"
	"transferbook/pkg/model"
)

func place(id string) *model.Place {
	return &model.Place{PlaceID: id, Description: id + " description", MainText: id}
}

func date(raw string) *model.TravelDate {
	d := model.ParseTravelDate(raw, time.UTC)
	return &d
}

func validPersonalInfo() model.BookingFormState {
	f := model.DefaultFormState("")
	f.FullName = "Jane Doe"
	f.Email = "jane@example.com"
	f.Phone = "6912345678"
	f.CountryCode = "+30"
	return f
}

func TestValidate_PersonalInfo(t *testing.T) {
	v := NewStepValidator(logger.Discard())

	tests := []struct {
		name       string
		mutate     func(f *model.BookingFormState)
		wantFields map[model.Field]string
	}{
		{
			name:       "all valid",
			mutate:     func(f *model.BookingFormState) {},
			wantFields: map[model.Field]string{},
		},
		{
			name:       "missing full name",
			mutate:     func(f *model.BookingFormState) { f.FullName = "" },
			wantFields: map[model.Field]string{model.FieldFullName: locale.KeyFullNameRequired},
		},
		{
			name:       "malformed email",
			mutate:     func(f *model.BookingFormState) { f.Email = "jane@" },
			wantFields: map[model.Field]string{model.FieldEmail: locale.KeyEmailInvalid},
		},
		{
			name:       "empty email",
			mutate:     func(f *model.BookingFormState) { f.Email = "" },
			wantFields: map[model.Field]string{model.FieldEmail: locale.KeyEmailInvalid},
		},
		{
			name:       "phone with nine digits after stripping",
			mutate:     func(f *model.BookingFormState) { f.Phone = "691-234-567" },
			wantFields: map[model.Field]string{model.FieldPhone: locale.KeyPhoneInvalid},
		},
		{
			name:       "phone with separators still has ten digits",
			mutate:     func(f *model.BookingFormState) { f.Phone = "(691) 234-5678" },
			wantFields: map[model.Field]string{},
		},
		{
			name:       "missing country code",
			mutate:     func(f *model.BookingFormState) { f.CountryCode = "" },
			wantFields: map[model.Field]string{model.FieldCountryCode: locale.KeyCountryCodeRequired},
		},
		{
			name:       "passport is optional",
			mutate:     func(f *model.BookingFormState) { f.Passport = "" },
			wantFields: map[model.Field]string{},
		},
		{
			name: "everything missing",
			mutate: func(f *model.BookingFormState) {
				*f = model.DefaultFormState("")
			},
			wantFields: map[model.Field]string{
				model.FieldFullName:    locale.KeyFullNameRequired,
				model.FieldEmail:       locale.KeyEmailInvalid,
				model.FieldPhone:       locale.KeyPhoneInvalid,
				model.FieldCountryCode: locale.KeyCountryCodeRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validPersonalInfo()
			tt.mutate(&f)

			got := v.Validate(model.StepPersonalInfo, &f)
			assertFailures(t, got, tt.wantFields)
		})
	}
}

func TestValidate_JourneyDetails(t *testing.T) {
	v := NewStepValidator(logger.Discard())

	tests := []struct {
		name       string
		tour       string
		form       func(f *model.BookingFormState)
		wantFields map[model.Field]string
	}{
		{
			name: "transfer with both locations and date",
			form: func(f *model.BookingFormState) {
				f.PickupLocation = place("airport")
				f.DropoffLocation = place("hotel")
				f.Date = date("2024-07-04")
			},
			wantFields: map[model.Field]string{},
		},
		{
			name: "transfer missing dropoff",
			form: func(f *model.BookingFormState) {
				f.PickupLocation = place("airport")
				f.Date = date("2024-07-04")
			},
			wantFields: map[model.Field]string{model.FieldDropoffLocation: locale.KeyDropoffRequired},
		},
		{
			name: "tour missing dropoff is fine",
			tour: "delphi-day-trip",
			form: func(f *model.BookingFormState) {
				f.PickupLocation = place("hotel")
				f.Date = date("2024-07-04")
			},
			wantFields: map[model.Field]string{},
		},
		{
			name: "tour still needs pickup and date",
			tour: "delphi-day-trip",
			form: func(f *model.BookingFormState) {},
			wantFields: map[model.Field]string{
				model.FieldPickupLocation: locale.KeyPickupRequired,
				model.FieldDate:           locale.KeyDateRequired,
			},
		},
		{
			name: "place typed but not picked from dropdown",
			form: func(f *model.BookingFormState) {
				f.PickupLocation = &model.Place{Description: "somewhere"}
				f.DropoffLocation = place("hotel")
				f.Date = date("2024-07-04")
			},
			wantFields: map[model.Field]string{model.FieldPickupLocation: locale.KeyPickupRequired},
		},
		{
			name: "unparsable date is a type mismatch",
			form: func(f *model.BookingFormState) {
				f.PickupLocation = place("airport")
				f.DropoffLocation = place("hotel")
				f.Date = date("next tuesday")
			},
			wantFields: map[model.Field]string{model.FieldDate: locale.KeyDateInvalid},
		},
		{
			name: "time is never checked",
			form: func(f *model.BookingFormState) {
				f.PickupLocation = place("airport")
				f.DropoffLocation = place("hotel")
				f.Date = date("2024-07-04")
				f.Time = "whenever"
			},
			wantFields: map[model.Field]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := model.DefaultFormState(tt.tour)
			tt.form(&f)

			got := v.Validate(model.StepJourneyDetails, &f)
			assertFailures(t, got, tt.wantFields)
		})
	}
}

func TestValidate_TravelPreferencesAlwaysValid(t *testing.T) {
	v := NewStepValidator(logger.Discard())
	f := model.BookingFormState{}

	if got := v.Validate(model.StepTravelPreferences, &f); !got.Valid() {
		t.Errorf("expected travel preferences to be valid, got %v", got)
	}
}

func TestValidate_OnlyChecksActiveStep(t *testing.T) {
	v := NewStepValidator(logger.Discard())
	f := validPersonalInfo()

	if got := v.Validate(model.StepPersonalInfo, &f); !got.Valid() {
		t.Fatalf("personal info should pass, got %v", got)
	}
	got := v.Validate(model.StepJourneyDetails, &f)
	if got.Valid() {
		t.Fatal("journey details should fail without locations")
	}
	if _, leaked := got[model.FieldFullName]; leaked {
		t.Error("journey validation must not report personal info fields")
	}
}

func TestFailures_Render(t *testing.T) {
	catalog, err := locale.NewCatalog(locale.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	failures := Failures{model.FieldDate: locale.KeyDateRequired}

	rendered := failures.Render(catalog.Translator(locale.LangEnglish))
	if rendered[model.FieldDate] != "Please select a travel date" {
		t.Errorf("unexpected rendering: %v", rendered)
	}
}

func assertFailures(t *testing.T, got Failures, want map[model.Field]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d failures %v, want %d %v", len(got), got, len(want), want)
	}
	for field, key := range want {
		if got[field] != key {
			t.Errorf("field %s: got %q, want %q", field, got[field], key)
		}
	}
}
