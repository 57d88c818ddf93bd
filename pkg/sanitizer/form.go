package sanitizer

import "transferbook/pkg/model"

// SanitizeFormUpdate normalizes every field present in u in place.
// Counters are clamped so stored values always stay within bounds.
func SanitizeFormUpdate(u *model.FormUpdate) {
	if u == nil {
		return
	}
	apply(u.FullName, nameStrategy)
	apply(u.Email, emailStrategy)
	apply(u.Phone, textStrategy)
	apply(u.CountryCode, codeStrategy)
	apply(u.Passport, documentStrategy)
	apply(u.Time, textStrategy)
	apply(u.FlightNumber, flightStrategy)
	apply(u.SelectedVehicle, textStrategy)
	apply(u.Notes, textStrategy)

	clamp(u.Passengers, model.FieldPassengers)
	clamp(u.Luggage, model.FieldLuggage)
	clamp(u.ChildSeats, model.FieldChildSeats)
}

func apply(v *string, p Pipeline) {
	if v != nil {
		*v = p.Apply(*v)
	}
}

func clamp(v *string, field model.Field) {
	if v != nil {
		*v = ClampField(field, *v)
	}
}
