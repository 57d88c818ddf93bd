package submission

import (
	"strconv"
	"strings"
	"time"

	"transferbook/pkg/model"
)

// isoLayout is the UTC millisecond form that downstream consumers parse.
const isoLayout = "2006-01-02T15:04:05.000Z"

// BuildPayload flattens a form snapshot into the lead sent to the notifiers.
func BuildPayload(sessionID, language string, form model.BookingFormState, now time.Time) *model.BookingPayload {
	bookingType := model.BookingTypeTransfer
	if form.IsTour() {
		bookingType = model.BookingTypeTour
	}

	return &model.BookingPayload{
		SessionID:       sessionID,
		FullName:        form.FullName,
		Email:           form.Email,
		Phone:           form.Phone,
		CountryCode:     form.CountryCode,
		Passport:        form.Passport,
		PickupLocation:  locationDetails(form.PickupLocation),
		DropoffLocation: locationDetails(form.DropoffLocation),
		IsoDateTime:     CombineDateTime(form.Date, form.Time),
		Time:            form.Time,
		Passengers:      form.Passengers,
		Luggage:         form.Luggage,
		ChildSeats:      form.ChildSeats,
		FlightNumber:    form.FlightNumber,
		Vehicle:         orNotSpecified(form.SelectedVehicle),
		Notes:           form.Notes,
		SelectedTour:    form.SelectedTour,
		BookingType:     bookingType,
		Language:        language,
		SubmittedAt:     now.UTC().Format(isoLayout),
	}
}

// CombineDateTime applies an "HH:MM" time to the date in the date's own zone
// and renders the instant in UTC. A missing date yields "Not specified"; an
// empty or unparsable time keeps the date's own time of day.
func CombineDateTime(date *model.TravelDate, hhmm string) string {
	if date == nil || !date.IsValid() {
		return model.NotSpecified
	}

	t := date.Time
	if hour, minute, ok := parseClock(hhmm); ok {
		t = time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
	}
	return t.UTC().Format(isoLayout)
}

func parseClock(hhmm string) (hour, minute int, ok bool) {
	h, m, found := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

func locationDetails(p *model.Place) model.LocationDetails {
	if p == nil {
		return model.LocationDetails{
			Label:       model.NotSpecified,
			Value:       model.NotSpecified,
			Description: model.NotSpecified,
			Coordinates: model.NotAvailable,
		}
	}

	coords := model.NotAvailable
	if p.Coordinates != nil {
		coords = p.Coordinates.String()
	}
	return model.LocationDetails{
		Label:       orNotSpecified(p.MainText),
		Value:       orNotSpecified(p.PlaceID),
		Description: orNotSpecified(p.Description),
		Coordinates: coords,
	}
}

func orNotSpecified(s string) string {
	if s == "" {
		return model.NotSpecified
	}
	return s
}
