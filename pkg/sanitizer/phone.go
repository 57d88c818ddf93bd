package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const unknownRegion = "ZZ"

// DigitsOnly strips every non-digit character.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCountryCode renders a dial code as "+<digits>"; "0030" and "30" both become "+30".
func NormalizeCountryCode(code string) string {
	digits := strings.TrimLeft(DigitsOnly(code), "0")
	if digits == "" {
		return ""
	}
	return "+" + digits
}

// NormalizePhone combines a dial code and a local number into E.164.
// A number that already carries a "+" prefix ignores countryCode.
// Returns "" when the number cannot be parsed.
func NormalizePhone(countryCode, phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	candidate := phone
	if !strings.HasPrefix(phone, "+") {
		code := NormalizeCountryCode(countryCode)
		if code == "" {
			return ""
		}
		candidate = code + DigitsOnly(phone)
	}

	parsed, err := phonenumbers.Parse(candidate, unknownRegion)
	if err != nil {
		return ""
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
