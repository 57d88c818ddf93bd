package model

type Field string

const (
	FieldFullName        Field = "fullName"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldCountryCode     Field = "countryCode"
	FieldPassport        Field = "passport"
	FieldPickupLocation  Field = "pickupLocation"
	FieldDropoffLocation Field = "dropoffLocation"
	FieldDate            Field = "date"
	FieldTime            Field = "time"
	FieldPassengers      Field = "passengers"
	FieldLuggage         Field = "luggage"
	FieldChildSeats      Field = "childSeats"
	FieldFlightNumber    Field = "flightNumber"
	FieldSelectedVehicle Field = "selectedVehicle"
	FieldNotes           Field = "notes"
	FieldSelectedTour    Field = "selectedTour"
)

const (
	DefaultTime       = "12:00"
	DefaultPassengers = "1"
	DefaultLuggage    = "0"
	DefaultChildSeats = "0"
)

type BookingFormState struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`
	Passport    string `json:"passport"`

	PickupLocation  *Place      `json:"pickupLocation"`
	DropoffLocation *Place      `json:"dropoffLocation"`
	Date            *TravelDate `json:"date"`
	Time            string      `json:"time"`

	Passengers      string `json:"passengers"`
	Luggage         string `json:"luggage"`
	ChildSeats      string `json:"childSeats"`
	FlightNumber    string `json:"flightNumber"`
	SelectedVehicle string `json:"selectedVehicle"`
	Notes           string `json:"notes"`

	SelectedTour string `json:"selectedTour"`
}

// FormUpdate is a partial form. Nil fields leave the current value untouched.
// SelectedTour is deliberately absent: the booking mode is fixed per session.
type FormUpdate struct {
	FullName    *string `json:"fullName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	CountryCode *string `json:"countryCode,omitempty"`
	Passport    *string `json:"passport,omitempty"`

	PickupLocation  *Place      `json:"pickupLocation,omitempty"`
	DropoffLocation *Place      `json:"dropoffLocation,omitempty"`
	Date            *TravelDate `json:"date,omitempty"`
	Time            *string     `json:"time,omitempty"`

	Passengers      *string `json:"passengers,omitempty"`
	Luggage         *string `json:"luggage,omitempty"`
	ChildSeats      *string `json:"childSeats,omitempty"`
	FlightNumber    *string `json:"flightNumber,omitempty"`
	SelectedVehicle *string `json:"selectedVehicle,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func DefaultFormState(selectedTour string) BookingFormState {
	return BookingFormState{
		Time:         DefaultTime,
		Passengers:   DefaultPassengers,
		Luggage:      DefaultLuggage,
		ChildSeats:   DefaultChildSeats,
		SelectedTour: selectedTour,
	}
}

func (f *BookingFormState) Mode() Mode {
	if f.SelectedTour != "" {
		return ModeTour
	}
	return ModeTransfer
}

func (f *BookingFormState) IsTour() bool {
	return f.Mode() == ModeTour
}

// Apply merges u into f. New values win; untouched fields are preserved.
// A place without a place id or an empty date clears the field.
func (f *BookingFormState) Apply(u FormUpdate) {
	setString(&f.FullName, u.FullName)
	setString(&f.Email, u.Email)
	setString(&f.Phone, u.Phone)
	setString(&f.CountryCode, u.CountryCode)
	setString(&f.Passport, u.Passport)

	if u.PickupLocation != nil {
		f.PickupLocation = selectedOrNil(u.PickupLocation)
	}
	if u.DropoffLocation != nil {
		f.DropoffLocation = selectedOrNil(u.DropoffLocation)
	}
	if u.Date != nil {
		if u.Date.IsEmpty() {
			f.Date = nil
		} else {
			d := *u.Date
			f.Date = &d
		}
	}
	setString(&f.Time, u.Time)

	setString(&f.Passengers, u.Passengers)
	setString(&f.Luggage, u.Luggage)
	setString(&f.ChildSeats, u.ChildSeats)
	setString(&f.FlightNumber, u.FlightNumber)
	setString(&f.SelectedVehicle, u.SelectedVehicle)
	setString(&f.Notes, u.Notes)
}

// Clone returns a deep copy safe to hand out of a session.
func (f BookingFormState) Clone() BookingFormState {
	cp := f
	cp.PickupLocation = f.PickupLocation.clone()
	cp.DropoffLocation = f.DropoffLocation.clone()
	if f.Date != nil {
		d := *f.Date
		cp.Date = &d
	}
	return cp
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func selectedOrNil(p *Place) *Place {
	if !p.IsSelected() {
		return nil
	}
	return p.clone()
}

// ValidationErrors maps a field to its rendered message.
type ValidationErrors map[Field]string

func (v ValidationErrors) Has(field Field) bool {
	_, ok := v[field]
	return ok
}

func (v ValidationErrors) Clone() ValidationErrors {
	cp := make(ValidationErrors, len(v))
	for k, msg := range v {
		cp[k] = msg
	}
	return cp
}
