package report

import (
	"sort"
	"strings"

	"github.com/skinscreen/screenreport/internal/model"
)

type crossTabKey struct {
	underserved string
	rural       string
	group       model.ReportGroup
}

// UnderservedRural cross-tabulates classified records by underserved status,
// rural status, and report group. The flags count as Yes only when the
// record's (city, county, state) location fully resolved; a record without a
// geographic match stays in the table as No/No rather than being dropped.
func UnderservedRural(records []model.ClassifiedRecord) []model.UnderservedRuralRow {
	counts := make(map[crossTabKey]int)
	for _, rec := range records {
		hasGeo := strings.TrimSpace(rec.City) != "" &&
			strings.TrimSpace(rec.State) != "" &&
			rec.County != nil && strings.TrimSpace(*rec.County) != ""

		k := crossTabKey{
			underserved: yesNo(hasGeo && rec.IsUnderserved),
			rural:       yesNo(hasGeo && rec.IsRural),
			group:       rec.ReportGroup,
		}
		counts[k]++
	}

	rows := make([]model.UnderservedRuralRow, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, model.UnderservedRuralRow{
			IsUnderserved: k.underserved,
			IsRural:       k.rural,
			Group:         k.group,
			Count:         n,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.IsUnderserved != b.IsUnderserved {
			return a.IsUnderserved < b.IsUnderserved
		}
		if a.IsRural != b.IsRural {
			return a.IsRural < b.IsRural
		}
		return a.Group < b.Group
	})
	return rows
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
