package normalize

import (
	"strings"
	"time"
)

// Common date formats found in clinic EHR exports.
var dateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Date canonicalizes a service date string to ISO form (2006-01-02) so the
// same visit groups together across export formats. Unparseable input is
// returned trimmed, not rejected: the date is a grouping key, not a measure.
func Date(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
