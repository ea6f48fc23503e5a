package model

// GroupSummaryRow is one line of the headline group summary: a tracked
// report group, its classified-record count, and its share of the tracked
// total in percent (two decimals).
type GroupSummaryRow struct {
	Group   ReportGroup
	Count   int
	Percent float64
}

// MultiDiagnosisRow is one visit at which a patient received more than one
// diagnosis. Diagnoses keeps the export order, duplicates included; a record
// with no diagnosis text contributes an empty string.
type MultiDiagnosisRow struct {
	ServiceDate string
	PatientID   string
	Diagnoses   []string
}

// GeoGroupCountRow counts classified records per location and report group.
type GeoGroupCountRow struct {
	State  string
	County string
	City   string
	Group  ReportGroup
	Count  int
}

// GeoTotalRow counts classified records per location across all groups.
type GeoTotalRow struct {
	State  string
	County string
	City   string
	Total  int
}

// UnderservedRuralRow cross-tabulates classified records by underserved and
// rural status. The flags are the reporting strings "Yes"/"No".
type UnderservedRuralRow struct {
	IsUnderserved string
	IsRural       string
	Group         ReportGroup
	Count         int
}

// CityRollupRow is one line of the unified per-city report. Counts are
// zero-filled so a city with visits but no classified diagnoses still shows.
type CityRollupRow struct {
	City          string
	State         string
	IsRural       string
	IsUnderserved string

	PatientCount      int // distinct patients seen in the city
	MultiDiagPatients int // distinct patients with a multi-diagnosis visit
	Precancerous      int
	NMSC              int
	Melanoma          int
	Suspicious        int // records categorized Uncertain/Suspicious Lesion
}
