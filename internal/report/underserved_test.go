package report

import (
	"testing"

	"github.com/skinscreen/screenreport/internal/model"
)

func TestUnderservedRural(t *testing.T) {
	travis := "Travis"
	records := []model.ClassifiedRecord{
		{
			EnrichedRecord: model.EnrichedRecord{
				ClinicRecord:  model.ClinicRecord{City: "Austin", State: "TX"},
				County:        &travis,
				IsUnderserved: true,
				IsRural:       true,
			},
			ReportGroup: model.GroupMelanoma,
		},
		{
			EnrichedRecord: model.EnrichedRecord{
				ClinicRecord:  model.ClinicRecord{City: "Austin", State: "TX"},
				County:        &travis,
				IsUnderserved: true,
				IsRural:       true,
			},
			ReportGroup: model.GroupMelanoma,
		},
		{
			EnrichedRecord: model.EnrichedRecord{
				ClinicRecord: model.ClinicRecord{City: "Dallas", State: "TX"},
				County:       &travis,
			},
			ReportGroup: model.GroupNMSC,
		},
	}

	rows := UnderservedRural(records)
	if len(rows) != 2 {
		t.Fatalf("expected 2 cross-tab rows, got %d", len(rows))
	}
	// Sorted ascending: No/No before Yes/Yes.
	if rows[0].IsUnderserved != "No" || rows[0].IsRural != "No" || rows[0].Count != 1 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].IsUnderserved != "Yes" || rows[1].IsRural != "Yes" || rows[1].Count != 2 {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestUnderservedRural_MissingGeoDefaultsToNo(t *testing.T) {
	// A record with underserved/rural flags set but no resolved county is
	// reported as No/No, not dropped.
	records := []model.ClassifiedRecord{
		{
			EnrichedRecord: model.EnrichedRecord{
				ClinicRecord:  model.ClinicRecord{City: "Nowhere", State: "TX"},
				IsUnderserved: true,
				IsRural:       true,
			},
			ReportGroup: model.GroupPrecancerous,
		},
	}

	rows := UnderservedRural(records)
	if len(rows) != 1 {
		t.Fatalf("geo-less record must stay in the table, got %d rows", len(rows))
	}
	if rows[0].IsUnderserved != "No" || rows[0].IsRural != "No" {
		t.Errorf("flags = %s/%s, want No/No default", rows[0].IsUnderserved, rows[0].IsRural)
	}
	if rows[0].Count != 1 {
		t.Errorf("count = %d, want 1", rows[0].Count)
	}
}

func TestUnderservedRural_Empty(t *testing.T) {
	if rows := UnderservedRural(nil); len(rows) != 0 {
		t.Errorf("expected empty result, got %+v", rows)
	}
}
