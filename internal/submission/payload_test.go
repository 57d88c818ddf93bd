package submission

import (
	"testing"
	"time"

	"transferbook/pkg/model"

	"github.com/stretchr/testify/assert"
)

func TestCombineDateTime(t *testing.T) {
	athens := time.FixedZone("EEST", 3*60*60)
	midnight := model.NewTravelDate(time.Date(2024, 6, 1, 0, 0, 0, 0, athens))
	withClock := model.NewTravelDate(time.Date(2024, 6, 1, 9, 45, 30, 0, time.UTC))

	tests := []struct {
		name string
		date *model.TravelDate
		time string
		want string
	}{
		{name: "no date", date: nil, time: "14:30", want: model.NotSpecified},
		{name: "invalid date", date: &model.TravelDate{Raw: "soon"}, time: "14:30", want: model.NotSpecified},
		{name: "time applied in date zone", date: &midnight, time: "14:30", want: "2024-06-01T11:30:00.000Z"},
		{name: "default time", date: &midnight, time: model.DefaultTime, want: "2024-06-01T09:00:00.000Z"},
		{name: "empty time keeps date time of day", date: &withClock, time: "", want: "2024-06-01T09:45:30.000Z"},
		{name: "unparsable time keeps date", date: &withClock, time: "noonish", want: "2024-06-01T09:45:30.000Z"},
		{name: "out of range hour keeps date", date: &withClock, time: "25:00", want: "2024-06-01T09:45:30.000Z"},
		{name: "seconds zeroed", date: &withClock, time: "10:00", want: "2024-06-01T10:00:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CombineDateTime(tt.date, tt.time))
		})
	}
}

func TestCombineDateTime_HourMatchesInput(t *testing.T) {
	d := model.NewTravelDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	got, err := time.Parse(isoLayout, CombineDateTime(&d, "14:30"))

	assert.NoError(t, err)
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestBuildPayload_Transfer(t *testing.T) {
	date := model.NewTravelDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	form := model.DefaultFormState("")
	form.FullName = "Jane Doe"
	form.Email = "jane@example.com"
	form.Phone = "6912345678"
	form.CountryCode = "+30"
	form.PickupLocation = &model.Place{
		PlaceID:     "ChIJ-airport",
		Description: "Athens International Airport, Greece",
		MainText:    "Athens International Airport",
		Coordinates: &model.Coordinates{Lat: 37.98, Lng: 23.73},
	}
	form.DropoffLocation = &model.Place{PlaceID: "ChIJ-hotel"}
	form.Date = &date
	now := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)

	p := BuildPayload("sess-1", "en", form, now)

	assert.Equal(t, "sess-1", p.SessionID)
	assert.Equal(t, model.BookingTypeTransfer, p.BookingType)
	assert.Equal(t, "Athens International Airport", p.PickupLocation.Label)
	assert.Equal(t, "ChIJ-airport", p.PickupLocation.Value)
	assert.Equal(t, "37.98,23.73", p.PickupLocation.Coordinates)
	assert.Equal(t, model.NotSpecified, p.DropoffLocation.Label)
	assert.Equal(t, model.NotSpecified, p.DropoffLocation.Description)
	assert.Equal(t, model.NotAvailable, p.DropoffLocation.Coordinates)
	assert.Equal(t, "2024-06-01T12:00:00.000Z", p.IsoDateTime)
	assert.Equal(t, model.NotSpecified, p.Vehicle)
	assert.Equal(t, "1", p.Passengers)
	assert.Equal(t, "6912345678", p.Phone)
	assert.Equal(t, "2024-05-20T08:00:00.000Z", p.SubmittedAt)
}

func TestBuildPayload_Tour(t *testing.T) {
	form := model.DefaultFormState("delphi-day-trip")
	form.SelectedVehicle = "minivan"

	p := BuildPayload("sess-2", "el", form, time.Now())

	assert.Equal(t, model.BookingTypeTour, p.BookingType)
	assert.Equal(t, "delphi-day-trip", p.SelectedTour)
	assert.Equal(t, "minivan", p.Vehicle)
	assert.Equal(t, model.NotSpecified, p.IsoDateTime)
	assert.Equal(t, model.NotSpecified, p.PickupLocation.Value)
	assert.Equal(t, "el", p.Language)
}
