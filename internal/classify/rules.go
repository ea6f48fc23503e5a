// Package classify selects screening records by diagnosis keywords and maps
// diagnosis text into the lesion taxonomy used for program reporting.
package classify

import (
	"strings"

	"github.com/skinscreen/screenreport/internal/model"
)

// rule pairs trigger substrings with the category they assign. Rules are
// evaluated in slice order and the first hit wins, so a diagnosis mentioning
// both "melanoma" and "nevi" is Melanoma. Do not reorder.
type rule struct {
	triggers []string
	category model.LesionCategory
}

var categoryRules = []rule{
	{[]string{"melanoma", "lentigo maligna"}, model.CategoryMelanoma},
	{[]string{"basal cell carcinoma", "bcc"}, model.CategoryBasalCell},
	{[]string{"squamous cell carcinoma", "keratoacanthoma"}, model.CategorySquamousCell},
	{[]string{"actinic", "porokeratosis"}, model.CategoryPrecancerous},
	{[]string{"dysplastic", "nevi", "neoplasm"}, model.CategoryUncertain},
}

// Categorize maps free-text diagnosis to a lesion category by priority-ordered
// substring matching. Text matching no rule is Other.
func Categorize(diagnosis string) model.LesionCategory {
	d := strings.ToLower(diagnosis)
	for _, r := range categoryRules {
		for _, t := range r.triggers {
			if strings.Contains(d, t) {
				return r.category
			}
		}
	}
	return model.CategoryOther
}

// Classify assigns the lesion category and report group to each filtered
// record. Input records are not mutated.
func Classify(records []model.EnrichedRecord) []model.ClassifiedRecord {
	out := make([]model.ClassifiedRecord, 0, len(records))
	for _, rec := range records {
		var diagnosis string
		if rec.DiagnosisName != nil {
			diagnosis = *rec.DiagnosisName
		}
		cat := Categorize(diagnosis)
		out = append(out, model.ClassifiedRecord{
			EnrichedRecord: rec,
			LesionCategory: cat,
			ReportGroup:    model.GroupFor(cat),
		})
	}
	return out
}
