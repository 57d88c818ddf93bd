package locale

const (
	LangEnglish = "en"
	LangGreek   = "el"
)

const (
	KeyFullNameRequired     = "booking.errors.fullNameRequired"
	KeyEmailInvalid         = "booking.errors.emailInvalid"
	KeyPhoneInvalid         = "booking.errors.phoneInvalid"
	KeyCountryCodeRequired  = "booking.errors.countryCodeRequired"
	KeyPickupRequired       = "booking.errors.pickupRequired"
	KeyDropoffRequired      = "booking.errors.dropoffRequired"
	KeyDateRequired         = "booking.errors.dateRequired"
	KeyDateInvalid          = "booking.errors.dateInvalid"
	KeySubmitSuccess        = "booking.toast.success"
	KeySubmitError          = "booking.toast.error"
	KeyValidationSummary    = "booking.errors.summary"
	KeyPickupLabelTransfer  = "booking.labels.pickupTransfer"
	KeyPickupLabelTour      = "booking.labels.pickupTour"
	KeyDropoffLabelTransfer = "booking.labels.dropoff"
)

var catalog = map[string]map[string]string{
	LangEnglish: {
		KeyFullNameRequired:     "Please enter your full name",
		KeyEmailInvalid:         "Please enter a valid email address",
		KeyPhoneInvalid:         "Please enter a valid phone number with at least 10 digits",
		KeyCountryCodeRequired:  "Please select your country code",
		KeyPickupRequired:       "Please select a pickup location from the dropdown",
		KeyDropoffRequired:      "Please select a dropoff location from the dropdown",
		KeyDateRequired:         "Please select a travel date",
		KeyDateInvalid:          "Please select a valid date for your journey",
		KeySubmitSuccess:        "Thank you! Your booking request has been sent. We will contact you shortly.",
		KeySubmitError:          "Something went wrong while sending your request. Please try again.",
		KeyValidationSummary:    "Please correct the highlighted fields",
		KeyPickupLabelTransfer:  "Pickup location",
		KeyPickupLabelTour:      "Hotel or meeting point",
		KeyDropoffLabelTransfer: "Dropoff location",
	},
	LangGreek: {
		KeyFullNameRequired:     "Παρακαλώ εισάγετε το ονοματεπώνυμό σας",
		KeyEmailInvalid:         "Παρακαλώ εισάγετε έγκυρη διεύθυνση email",
		KeyPhoneInvalid:         "Παρακαλώ εισάγετε έγκυρο αριθμό τηλεφώνου με τουλάχιστον 10 ψηφία",
		KeyCountryCodeRequired:  "Παρακαλώ επιλέξτε κωδικό χώρας",
		KeyPickupRequired:       "Παρακαλώ επιλέξτε σημείο παραλαβής από τη λίστα",
		KeyDropoffRequired:      "Παρακαλώ επιλέξτε προορισμό από τη λίστα",
		KeyDateRequired:         "Παρακαλώ επιλέξτε ημερομηνία ταξιδιού",
		KeyDateInvalid:          "Παρακαλώ επιλέξτε έγκυρη ημερομηνία για το ταξίδι σας",
		KeySubmitSuccess:        "Ευχαριστούμε! Το αίτημα κράτησής σας στάλθηκε. Θα επικοινωνήσουμε σύντομα μαζί σας.",
		KeySubmitError:          "Κάτι πήγε στραβά κατά την αποστολή. Παρακαλώ δοκιμάστε ξανά.",
		KeyValidationSummary:    "Παρακαλώ διορθώστε τα επισημασμένα πεδία",
		KeyPickupLabelTransfer:  "Σημείο παραλαβής",
		KeyPickupLabelTour:      "Ξενοδοχείο ή σημείο συνάντησης",
		KeyDropoffLabelTransfer: "Προορισμός",
	},
}
