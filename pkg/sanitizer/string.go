package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return nameStrategy.Apply(name)
}

func NormalizeEmail(email string) string {
	return emailStrategy.Apply(email)
}

// NormalizeFlightNumber uppercases and strips spaces: "a3 601" -> "A3601".
func NormalizeFlightNumber(flight string) string {
	return flightStrategy.Apply(flight)
}
