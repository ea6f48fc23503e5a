package model

// ClinicRecord is one diagnosis entry from the mobile clinic EHR export.
// One screening visit may produce several records sharing (ServiceDate, PatientID).
type ClinicRecord struct {
	PatientID     string
	ServiceDate   string // calendar date as exported, e.g. "2024-01-01"
	City          string
	State         string
	DiagnosisName *string // free text, may be absent in the export
}

// GeoRow is one (city, state) → county row from the city/county reference.
type GeoRow struct {
	City   string
	State  string
	County string
}

// UnderservedRow is one (state, county) row from the HRSA medically
// underserved area reference. A county may carry several designation rows.
type UnderservedRow struct {
	State           string
	County          string
	DesignationType *string
	RuralStatus     *string // free-text description; "rural" means rural
}

// EnrichedRecord is a ClinicRecord after the two reference joins.
// County and the underserved fields stay nil when no reference key matched.
type EnrichedRecord struct {
	ClinicRecord

	County          *string
	DesignationType *string
	RuralStatus     *string
	IsUnderserved   bool
	IsRural         bool
}

// ClassifiedRecord is an EnrichedRecord whose diagnosis passed the keyword
// filter and was assigned a lesion category and report group.
type ClassifiedRecord struct {
	EnrichedRecord

	LesionCategory LesionCategory
	ReportGroup    ReportGroup
}
