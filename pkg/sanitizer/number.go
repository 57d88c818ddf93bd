package sanitizer

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"transferbook/pkg/model"
)

// ClampCounter parses a numeric-as-string counter and clamps it into bounds.
// Non-numeric input and NaN collapse to the minimum; values past either end,
// infinities included, stick to the bound they exceed.
func ClampCounter(value string, bounds model.CounterBounds) string {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return strconv.Itoa(max(bounds.Min, min(bounds.Max, n)))
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return strconv.Itoa(bounds.Min)
	}
	switch {
	case math.IsNaN(f), f <= float64(bounds.Min):
		return strconv.Itoa(bounds.Min)
	case f >= float64(bounds.Max):
		return strconv.Itoa(bounds.Max)
	}
	return strconv.Itoa(int(f))
}

func ClampField(field model.Field, value string) string {
	bounds, ok := model.Counters[field]
	if !ok {
		return value
	}
	return ClampCounter(value, bounds)
}
