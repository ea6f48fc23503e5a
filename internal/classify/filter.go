package classify

import (
	"strings"

	"github.com/skinscreen/screenreport/internal/model"
)

// FilterByKeywords returns the records whose diagnosis text contains any of
// the keywords as a case-insensitive substring. Matching is deliberately
// loose: no word boundaries, so "bcc" also hits inside longer tokens. A nil
// diagnosis never matches; an empty keyword matches every non-nil diagnosis;
// an empty keyword list matches nothing.
func FilterByKeywords(records []model.EnrichedRecord, keywords []string) []model.EnrichedRecord {
	if len(keywords) == 0 {
		return []model.EnrichedRecord{}
	}

	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	out := make([]model.EnrichedRecord, 0, len(records))
	for _, rec := range records {
		if rec.DiagnosisName == nil {
			continue
		}
		d := strings.ToLower(*rec.DiagnosisName)
		for _, k := range lowered {
			if strings.Contains(d, k) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
