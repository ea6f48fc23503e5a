package enrich

import (
	"testing"

	"github.com/skinscreen/screenreport/internal/model"
)

func strPtr(s string) *string { return &s }

func clinicRow(patient, date, city, state string) model.ClinicRecord {
	return model.ClinicRecord{PatientID: patient, ServiceDate: date, City: city, State: state}
}

func TestJoin_AttachesCountyAndDesignation(t *testing.T) {
	clinic := []model.ClinicRecord{clinicRow("P1", "2024-01-01", "Austin", "TX")}
	geo := []model.GeoRow{{City: "Austin", State: "TX", County: "Travis"}}
	underserved := []model.UnderservedRow{{
		State: "TX", County: "Travis",
		DesignationType: strPtr("MUA"),
		RuralStatus:     strPtr("Rural"),
	}}

	got := Join(clinic, geo, underserved)
	if len(got) != 1 {
		t.Fatalf("expected 1 enriched row, got %d", len(got))
	}
	r := got[0]
	if r.County == nil || *r.County != "Travis" {
		t.Errorf("county = %v, want Travis", r.County)
	}
	if !r.IsUnderserved {
		t.Error("expected IsUnderserved with a designation present")
	}
	if !r.IsRural {
		t.Error("expected IsRural for rural status description")
	}
}

func TestJoin_LeftPreservingOnUnmatchedKeys(t *testing.T) {
	clinic := []model.ClinicRecord{
		clinicRow("P1", "2024-01-01", "Nowhere", "TX"), // no geo match
		clinicRow("P2", "2024-01-01", "Austin", "TX"),  // geo match, no MUA match
	}
	geo := []model.GeoRow{{City: "Austin", State: "TX", County: "Travis"}}

	got := Join(clinic, geo, nil)
	if len(got) != len(clinic) {
		t.Fatalf("left join must preserve rows: got %d, want %d", len(got), len(clinic))
	}
	if got[0].County != nil {
		t.Errorf("unmatched city should keep nil county, got %q", *got[0].County)
	}
	if got[0].IsUnderserved || got[0].IsRural {
		t.Error("unmatched row must default flags to false")
	}
	if got[1].County == nil || *got[1].County != "Travis" {
		t.Errorf("matched row lost its county: %v", got[1].County)
	}
	if got[1].DesignationType != nil || got[1].IsUnderserved {
		t.Error("county without MUA rows must keep nil designation and false flag")
	}
}

func TestJoin_NormalizesKeys(t *testing.T) {
	clinic := []model.ClinicRecord{
		clinicRow("P1", "2024-01-01", "  austin ", "Texas"),
		clinicRow("P2", "2024-01-01", "EL  PASO", "tx"),
	}
	geo := []model.GeoRow{
		{City: "Austin", State: "TX", County: "Travis"},
		{City: "El Paso", State: "TX", County: "El Paso"},
	}

	got := Join(clinic, geo, nil)
	for i, r := range got {
		if r.County == nil {
			t.Errorf("row %d: expected normalized key match, got nil county", i)
		}
	}
	// Raw display casing survives the join untouched.
	if got[0].City != "  austin " || got[0].State != "Texas" {
		t.Errorf("display form was rewritten: %q, %q", got[0].City, got[0].State)
	}
}

func TestJoin_FanOutOnDuplicateReferenceKeys(t *testing.T) {
	clinic := []model.ClinicRecord{clinicRow("P1", "2024-01-01", "Austin", "TX")}
	geo := []model.GeoRow{{City: "Austin", State: "TX", County: "Travis"}}
	underserved := []model.UnderservedRow{
		{State: "TX", County: "Travis", DesignationType: strPtr("MUA")},
		{State: "TX", County: "Travis", DesignationType: strPtr("MUP")},
	}

	got := Join(clinic, geo, underserved)
	if len(got) != 2 {
		t.Fatalf("duplicate reference keys must fan out: got %d rows, want 2", len(got))
	}
	// Fan-out order follows reference input order.
	if *got[0].DesignationType != "MUA" || *got[1].DesignationType != "MUP" {
		t.Errorf("fan-out order wrong: %q, %q", *got[0].DesignationType, *got[1].DesignationType)
	}
	for _, r := range got {
		if r.PatientID != "P1" {
			t.Errorf("fan-out row lost its source record: %q", r.PatientID)
		}
	}
}

func TestJoin_RuralDerivation(t *testing.T) {
	cases := []struct {
		status *string
		want   bool
	}{
		{strPtr("Rural"), true},
		{strPtr("  rural  "), true},
		{strPtr("RURAL"), true},
		{strPtr("Non-Rural"), false},
		{strPtr("Partially Rural"), false},
		{nil, false},
	}
	for _, tc := range cases {
		clinic := []model.ClinicRecord{clinicRow("P1", "2024-01-01", "Austin", "TX")}
		geo := []model.GeoRow{{City: "Austin", State: "TX", County: "Travis"}}
		underserved := []model.UnderservedRow{{State: "TX", County: "Travis", RuralStatus: tc.status}}

		got := Join(clinic, geo, underserved)
		if len(got) != 1 {
			t.Fatalf("expected 1 row, got %d", len(got))
		}
		if got[0].IsRural != tc.want {
			status := "<nil>"
			if tc.status != nil {
				status = *tc.status
			}
			t.Errorf("IsRural for status %q = %v, want %v", status, got[0].IsRural, tc.want)
		}
	}
}

func TestJoin_EmptyInput(t *testing.T) {
	got := Join(nil, nil, nil)
	if len(got) != 0 {
		t.Errorf("empty input must produce empty output, got %d rows", len(got))
	}
}
