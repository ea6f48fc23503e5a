package report

import (
	"sort"

	"github.com/skinscreen/screenreport/internal/model"
)

type visitKey struct {
	serviceDate string
	patientID   string
}

// MultipleDiagnoses finds visits at which a patient received more than one
// diagnosis. It runs over the full enriched dataset, not the filtered subset,
// so a multi-diagnosis visit is detected even when none of its diagnoses
// matched the keyword filter. Diagnosis lists keep input order, duplicates
// included; rows sort by service date then patient.
func MultipleDiagnoses(records []model.EnrichedRecord) []model.MultiDiagnosisRow {
	order := make([]visitKey, 0)
	visits := make(map[visitKey][]string)
	for _, rec := range records {
		k := visitKey{serviceDate: rec.ServiceDate, patientID: rec.PatientID}
		if _, seen := visits[k]; !seen {
			order = append(order, k)
		}
		var diagnosis string
		if rec.DiagnosisName != nil {
			diagnosis = *rec.DiagnosisName
		}
		visits[k] = append(visits[k], diagnosis)
	}

	rows := make([]model.MultiDiagnosisRow, 0)
	for _, k := range order {
		if len(visits[k]) < 2 {
			continue
		}
		rows = append(rows, model.MultiDiagnosisRow{
			ServiceDate: k.serviceDate,
			PatientID:   k.patientID,
			Diagnoses:   visits[k],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ServiceDate != rows[j].ServiceDate {
			return rows[i].ServiceDate < rows[j].ServiceDate
		}
		return rows[i].PatientID < rows[j].PatientID
	})
	return rows
}
