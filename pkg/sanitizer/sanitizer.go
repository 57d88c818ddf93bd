package sanitizer

import "strings"

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func removeSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

var (
	nameStrategy     = Pipeline{TrimAndNormalize}
	emailStrategy    = Pipeline{trim, strings.ToLower}
	textStrategy     = Pipeline{trim}
	codeStrategy     = Pipeline{trim, NormalizeCountryCode}
	documentStrategy = Pipeline{trim, strings.ToUpper, removeSpaces}
	flightStrategy   = Pipeline{trim, strings.ToUpper, removeSpaces}
)
