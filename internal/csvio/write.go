package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/skinscreen/screenreport/internal/model"
)

// ReportFilename builds a dated report file name, e.g.
// "summary_report_31-Aug-2026.csv".
func ReportFilename(base string, date time.Time) string {
	return fmt.Sprintf("%s_%s.csv", base, date.Format("02-Jan-2006"))
}

// writeCSV writes a header row plus records to path. An empty record set
// still produces the header, so every report has its full column schema.
func writeCSV(path string, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// WriteGroupSummary writes the headline group summary table.
func WriteGroupSummary(path string, rows []model.GroupSummaryRow) error {
	recs := make([][]string, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, []string{
			string(r.Group),
			strconv.Itoa(r.Count),
			strconv.FormatFloat(r.Percent, 'f', 2, 64),
		})
	}
	return writeCSV(path, []string{"Diagnosis Group", "Count", "Percent"}, recs)
}

// WriteMultiDiagnoses writes the multiple-diagnosis visits table. Diagnosis
// lists are joined with "; " for the spreadsheet.
func WriteMultiDiagnoses(path string, rows []model.MultiDiagnosisRow) error {
	recs := make([][]string, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, []string{
			r.ServiceDate,
			r.PatientID,
			strings.Join(r.Diagnoses, "; "),
		})
	}
	return writeCSV(path, []string{"Service Date", "Patient_ID", "Diagnosis Names"}, recs)
}

// WriteGeoByGroup writes classified counts per location and report group.
func WriteGeoByGroup(path string, rows []model.GeoGroupCountRow) error {
	recs := make([][]string, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, []string{
			r.State, r.County, r.City, string(r.Group), strconv.Itoa(r.Count),
		})
	}
	return writeCSV(path, []string{"State", "County", "City", "Group", "Count"}, recs)
}

// WriteGeoTotals writes total classified counts per location.
func WriteGeoTotals(path string, rows []model.GeoTotalRow) error {
	recs := make([][]string, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, []string{
			r.State, r.County, r.City, strconv.Itoa(r.Total),
		})
	}
	return writeCSV(path, []string{"State", "County", "City", "Total Diagnoses"}, recs)
}

// WriteUnderservedRural writes the underserved/rural cross-tabulation.
func WriteUnderservedRural(path string, rows []model.UnderservedRuralRow) error {
	recs := make([][]string, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, []string{
			r.IsUnderserved, r.IsRural, string(r.Group), strconv.Itoa(r.Count),
		})
	}
	return writeCSV(path, []string{"Is_Underserved", "Is_Rural", "Group", "Count"}, recs)
}

// WriteCityRollup writes the unified per-city summary.
func WriteCityRollup(path string, rows []model.CityRollupRow) error {
	recs := make([][]string, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, []string{
			r.City, r.State, r.IsRural, r.IsUnderserved,
			strconv.Itoa(r.PatientCount),
			strconv.Itoa(r.MultiDiagPatients),
			strconv.Itoa(r.Precancerous),
			strconv.Itoa(r.NMSC),
			strconv.Itoa(r.Melanoma),
			strconv.Itoa(r.Suspicious),
		})
	}
	return writeCSV(path, []string{
		"City", "State", "Is_Rural", "Is_Underserved",
		"Patient Count", "Patients With Multiple Diagnoses",
		"Precancerous", "NMSC", "Melanoma", "Uncertain/Suspicious Lesions",
	}, recs)
}
