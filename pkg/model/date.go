package model

import (
	"encoding/json"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// TravelDate keeps the raw input next to the parsed instant so that a value
// which failed to parse can still be reported as a type mismatch.
type TravelDate struct {
	Time time.Time
	Raw  string
}

// ParseTravelDate accepts "YYYY-MM-DD" (local midnight in loc) or RFC 3339.
// Unparsable input yields an invalid date rather than an error.
func ParseTravelDate(raw string, loc *time.Location) TravelDate {
	raw = strings.TrimSpace(raw)
	if loc == nil {
		loc = time.Local
	}
	if raw == "" {
		return TravelDate{}
	}
	if t, err := time.ParseInLocation(dateLayout, raw, loc); err == nil {
		return TravelDate{Time: t, Raw: raw}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return TravelDate{Time: t.In(loc), Raw: raw}
	}
	return TravelDate{Raw: raw}
}

func NewTravelDate(t time.Time) TravelDate {
	return TravelDate{Time: t, Raw: t.Format(dateLayout)}
}

func (d TravelDate) IsEmpty() bool {
	return d.Raw == "" && d.Time.IsZero()
}

func (d TravelDate) IsValid() bool {
	return !d.Time.IsZero()
}

func (d TravelDate) String() string {
	if !d.IsValid() {
		return d.Raw
	}
	return d.Time.Format(dateLayout)
}

func (d TravelDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses in time.Local; callers that know the business time zone
// should use ParseTravelDate instead.
func (d *TravelDate) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		*d = TravelDate{Raw: string(b)}
		return nil
	}
	*d = ParseTravelDate(raw, time.Local)
	return nil
}
