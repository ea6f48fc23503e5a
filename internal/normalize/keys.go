package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// Key lowercases, collapses whitespace, and trims the input. Join keys are
// compared in this form; the raw display form is kept on the record.
func Key(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return multiSpace.ReplaceAllString(s, " ")
}

// IsRural reports whether a rural status description means rural.
// Nil or non-matching descriptions are not rural.
func IsRural(status *string) bool {
	if status == nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(*status)) == "rural"
}
