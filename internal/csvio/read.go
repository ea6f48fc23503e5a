// Package csvio reads clinic exports and reference tables from CSV and
// writes the report tables back out. The pipeline core never touches files;
// everything on-disk goes through here.
package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skinscreen/screenreport/internal/model"
	"github.com/skinscreen/screenreport/internal/normalize"
)

// Clinic export column names. Lookup is case-insensitive and
// whitespace-tolerant; these are the canonical forms from the EHR export.
const (
	colPatientID   = "patient_id"
	colServiceDate = "service date"
	colCity        = "city"
	colState       = "state"
	colDiagnosis   = "diagnosis name"

	colCounty      = "county"
	colDesignation = "designation type"
	colRuralStatus = "rural status description"
)

// MissingColumnError reports a required input column that is absent from a
// file's header. It is the one unrecoverable input condition.
type MissingColumnError struct {
	File   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.File, e.Column)
}

type table struct {
	cols map[string]int
	rows [][]string
}

// readTable loads a whole CSV file, skipping a UTF-8 BOM if present, and
// verifies the required columns exist in the header.
func readTable(path string, required []string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	bufReader := bufio.NewReaderSize(file, 256*1024)
	bom, err := bufReader.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		bufReader.Discard(3)
	}

	reader := csv.NewReader(bufReader)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := cols[col]; !ok {
			return nil, &MissingColumnError{File: path, Column: col}
		}
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return &table{cols: cols, rows: rows}, nil
}

// cell returns the named column of a row, or "" when the row is short.
func (t *table) cell(row []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// optCell returns nil for empty cells; used for nullable columns.
func (t *table) optCell(row []string, col string) *string {
	v := t.cell(row, col)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

// ReadClinicRecords loads one or more clinic export files and concatenates
// their rows in argument order. Service dates are canonicalized so the same
// visit groups together across export formats.
func ReadClinicRecords(paths ...string) ([]model.ClinicRecord, error) {
	required := []string{colPatientID, colServiceDate, colCity, colState, colDiagnosis}
	var out []model.ClinicRecord
	for _, path := range paths {
		t, err := readTable(path, required)
		if err != nil {
			return nil, err
		}
		for _, row := range t.rows {
			out = append(out, model.ClinicRecord{
				PatientID:     strings.TrimSpace(t.cell(row, colPatientID)),
				ServiceDate:   normalize.Date(t.cell(row, colServiceDate)),
				City:          t.cell(row, colCity),
				State:         t.cell(row, colState),
				DiagnosisName: t.optCell(row, colDiagnosis),
			})
		}
	}
	return out, nil
}

// ReadGeoReference loads the city/county reference table.
func ReadGeoReference(path string) ([]model.GeoRow, error) {
	t, err := readTable(path, []string{colCity, colState, colCounty})
	if err != nil {
		return nil, err
	}
	out := make([]model.GeoRow, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, model.GeoRow{
			City:   t.cell(row, colCity),
			State:  t.cell(row, colState),
			County: t.cell(row, colCounty),
		})
	}
	return out, nil
}

// ReadUnderservedReference loads the HRSA medically-underserved-area
// reference table.
func ReadUnderservedReference(path string) ([]model.UnderservedRow, error) {
	t, err := readTable(path, []string{colState, colCounty, colDesignation, colRuralStatus})
	if err != nil {
		return nil, err
	}
	out := make([]model.UnderservedRow, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, model.UnderservedRow{
			State:           t.cell(row, colState),
			County:          t.cell(row, colCounty),
			DesignationType: t.optCell(row, colDesignation),
			RuralStatus:     t.optCell(row, colRuralStatus),
		})
	}
	return out, nil
}
