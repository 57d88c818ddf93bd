package locale

import "testing"

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(LangEnglish)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return c
}

func TestCatalog_EnglishMessages(t *testing.T) {
	tr := newCatalog(t).Translator(LangEnglish)

	tests := map[string]string{
		KeyFullNameRequired: "Please enter your full name",
		KeyEmailInvalid:     "Please enter a valid email address",
		KeyPhoneInvalid:     "Please enter a valid phone number with at least 10 digits",
		KeyPickupRequired:   "Please select a pickup location from the dropdown",
		KeyDropoffRequired:  "Please select a dropoff location from the dropdown",
		KeyDateRequired:     "Please select a travel date",
		KeyDateInvalid:      "Please select a valid date for your journey",
	}
	for key, want := range tests {
		if got := tr.Message(key); got != want {
			t.Errorf("Message(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestCatalog_GreekMessages(t *testing.T) {
	tr := newCatalog(t).Translator(LangGreek)

	if tr.Language() != LangGreek {
		t.Fatalf("Language() = %q, want %q", tr.Language(), LangGreek)
	}
	if got := tr.Message(KeyDateRequired); got != "Παρακαλώ επιλέξτε ημερομηνία ταξιδιού" {
		t.Errorf("unexpected greek message: %q", got)
	}
}

func TestCatalog_FallbacksToDefaultLanguage(t *testing.T) {
	c := newCatalog(t)

	tr := c.Translator("de", "")
	if tr.Language() != LangEnglish {
		t.Errorf("expected english fallback, got %q", tr.Language())
	}
	if got := tr.Message("booking.errors.unknown"); got != "booking.errors.unknown" {
		t.Errorf("unknown keys should render as the key, got %q", got)
	}
}

func TestCatalog_PicksFirstSupported(t *testing.T) {
	tr := newCatalog(t).Translator("fr", LangGreek, LangEnglish)
	if tr.Language() != LangGreek {
		t.Errorf("expected el, got %q", tr.Language())
	}
}

func TestNewCatalog_RejectsUnsupportedDefault(t *testing.T) {
	if _, err := NewCatalog("xx"); err == nil {
		t.Fatal("expected error for unsupported default language")
	}
}

func TestCatalog_AllLanguagesCoverEveryKey(t *testing.T) {
	for key := range catalog[LangEnglish] {
		if _, ok := catalog[LangGreek][key]; !ok {
			t.Errorf("greek catalog is missing %q", key)
		}
	}
}
