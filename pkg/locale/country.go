package locale

import "strings"

type Country struct {
	Code     string // ISO 3166-1 alpha-2 country code (e.g., "GR", "GB")
	Name     string
	DialCode string // E.164 country calling code with "+" prefix
}

// Countries offered in the dial-code picker, most frequent origins first.
var Countries = []Country{
	{Code: "GR", Name: "Greece", DialCode: "+30"},
	{Code: "GB", Name: "United Kingdom", DialCode: "+44"},
	{Code: "US", Name: "United States", DialCode: "+1"},
	{Code: "DE", Name: "Germany", DialCode: "+49"},
	{Code: "FR", Name: "France", DialCode: "+33"},
	{Code: "IT", Name: "Italy", DialCode: "+39"},
	{Code: "ES", Name: "Spain", DialCode: "+34"},
	{Code: "NL", Name: "Netherlands", DialCode: "+31"},
	{Code: "CY", Name: "Cyprus", DialCode: "+357"},
	{Code: "IL", Name: "Israel", DialCode: "+972"},
	{Code: "AU", Name: "Australia", DialCode: "+61"},
}

func LookupDialCode(dialCode string) *Country {
	dialCode = strings.TrimSpace(dialCode)
	for i := range Countries {
		if Countries[i].DialCode == dialCode {
			return &Countries[i]
		}
	}
	return nil
}

// InferCountryFromPhone matches the longest dial code prefixing an E.164 number.
func InferCountryFromPhone(phone string) *Country {
	normalized := strings.TrimSpace(phone)

	var best *Country
	for i := range Countries {
		c := &Countries[i]
		if strings.HasPrefix(normalized, c.DialCode) && (best == nil || len(c.DialCode) > len(best.DialCode)) {
			best = c
		}
	}
	return best
}
