package report

import (
	"math"
	"sort"

	"github.com/skinscreen/screenreport/internal/model"
)

// GroupSummary counts classified records per tracked report group
// (Precancerous, NMSC, Melanoma) with each count's share of the tracked
// total in percent, rounded to two decimals. Other is excluded from this
// view. When no record lands in a tracked group the result is empty, and the
// percent denominator is the tracked total, not the full dataset.
func GroupSummary(records []model.ClassifiedRecord) []model.GroupSummaryRow {
	counts := make(map[model.ReportGroup]int)
	for _, rec := range records {
		counts[rec.ReportGroup]++
	}

	rows := make([]model.GroupSummaryRow, 0, len(model.TrackedGroups))
	total := 0
	for _, g := range model.TrackedGroups {
		if counts[g] == 0 {
			continue
		}
		rows = append(rows, model.GroupSummaryRow{Group: g, Count: counts[g]})
		total += counts[g]
	}
	if total == 0 {
		return rows
	}

	for i := range rows {
		pct := float64(rows[i].Count) / float64(total) * 100
		rows[i].Percent = math.Round(pct*100) / 100
	}

	// Largest group first; ties keep canonical tracked-group order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}
