package report

import (
	"math"
	"testing"

	"github.com/skinscreen/screenreport/internal/model"
)

func classifiedWithGroups(groups ...model.ReportGroup) []model.ClassifiedRecord {
	out := make([]model.ClassifiedRecord, len(groups))
	for i, g := range groups {
		out[i] = model.ClassifiedRecord{ReportGroup: g}
	}
	return out
}

func TestGroupSummary_AllGroups(t *testing.T) {
	records := classifiedWithGroups(
		model.GroupMelanoma,
		model.GroupNMSC, model.GroupNMSC,
		model.GroupPrecancerous, model.GroupPrecancerous, model.GroupPrecancerous,
	)

	rows := GroupSummary(records)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	// Largest group first.
	if rows[0].Group != model.GroupPrecancerous || rows[0].Count != 3 {
		t.Errorf("row 0 = %+v, want Precancerous count 3", rows[0])
	}
	if rows[1].Group != model.GroupNMSC || rows[2].Group != model.GroupMelanoma {
		t.Errorf("unexpected order: %+v", rows)
	}

	var pctSum float64
	for _, r := range rows {
		pctSum += r.Percent
	}
	if math.Abs(pctSum-100.0) > 0.02 {
		t.Errorf("percentages sum to %.2f, want 100.00", pctSum)
	}
}

func TestGroupSummary_PercentRounding(t *testing.T) {
	records := classifiedWithGroups(
		model.GroupMelanoma, model.GroupMelanoma, model.GroupNMSC,
	)
	rows := GroupSummary(records)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Percent != 66.67 {
		t.Errorf("melanoma percent = %v, want 66.67", rows[0].Percent)
	}
	if rows[1].Percent != 33.33 {
		t.Errorf("nmsc percent = %v, want 33.33", rows[1].Percent)
	}
}

func TestGroupSummary_OtherExcluded(t *testing.T) {
	records := classifiedWithGroups(
		model.GroupMelanoma, model.GroupOther, model.GroupOther, model.GroupOther,
	)
	rows := GroupSummary(records)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	// The denominator is the tracked total, so Melanoma is 100% even though
	// Other outnumbers it.
	if rows[0].Group != model.GroupMelanoma || rows[0].Percent != 100.00 {
		t.Errorf("row = %+v, want Melanoma at 100.00", rows[0])
	}
}

func TestGroupSummary_NoTrackedGroups(t *testing.T) {
	records := classifiedWithGroups(model.GroupOther, model.GroupOther)
	if rows := GroupSummary(records); len(rows) != 0 {
		t.Errorf("expected empty summary, got %+v", rows)
	}
	if rows := GroupSummary(nil); len(rows) != 0 {
		t.Errorf("expected empty summary for empty input, got %+v", rows)
	}
}
