package model

// RollupParquetRow mirrors the Parquet schema for one city rollup line.
// Yes/No flags stay strings so the Parquet output matches the CSV report.
type RollupParquetRow struct {
	City          string `parquet:"city"`
	State         string `parquet:"state"`
	IsRural       string `parquet:"is_rural"`
	IsUnderserved string `parquet:"is_underserved"`

	PatientCount      int32 `parquet:"patient_count"`
	MultiDiagPatients int32 `parquet:"patients_with_multiple_diagnoses"`
	Precancerous      int32 `parquet:"precancer_count"`
	NMSC              int32 `parquet:"nmsc_count"`
	Melanoma          int32 `parquet:"melanoma_count"`
	Suspicious        int32 `parquet:"suspicious_lesion_count"`
}

// ToParquetRow converts a CityRollupRow for Parquet export.
func (r CityRollupRow) ToParquetRow() RollupParquetRow {
	return RollupParquetRow{
		City:              r.City,
		State:             r.State,
		IsRural:           r.IsRural,
		IsUnderserved:     r.IsUnderserved,
		PatientCount:      int32(r.PatientCount),
		MultiDiagPatients: int32(r.MultiDiagPatients),
		Precancerous:      int32(r.Precancerous),
		NMSC:              int32(r.NMSC),
		Melanoma:          int32(r.Melanoma),
		Suspicious:        int32(r.Suspicious),
	}
}
