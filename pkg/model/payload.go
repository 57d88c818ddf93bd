package model

const (
	NotSpecified = "Not specified"
	NotAvailable = "Not available"

	BookingTypeTour     = "Tour Booking"
	BookingTypeTransfer = "Transfer"
)

type LocationDetails struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Coordinates string `json:"coordinates"`
}

// BookingPayload is the flattened lead sent to the notifier channels.
type BookingPayload struct {
	SessionID   string `json:"sessionId"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`
	Passport    string `json:"passport"`

	PickupLocation  LocationDetails `json:"pickupLocation"`
	DropoffLocation LocationDetails `json:"dropoffLocation"`
	IsoDateTime     string          `json:"isoDateTime"`
	Time            string          `json:"time"`

	Passengers   string `json:"passengers"`
	Luggage      string `json:"luggage"`
	ChildSeats   string `json:"childSeats"`
	FlightNumber string `json:"flightNumber"`
	Vehicle      string `json:"vehicle"`
	Notes        string `json:"notes"`

	SelectedTour string `json:"selectedTour"`
	BookingType  string `json:"bookingType"`
	Language     string `json:"language"`
	SubmittedAt  string `json:"submittedAt"`
}
