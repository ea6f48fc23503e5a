package report

import (
	"sort"

	"github.com/skinscreen/screenreport/internal/model"
	"github.com/skinscreen/screenreport/internal/normalize"
)

type cityKey struct {
	city  string
	state string
}

// CityRollup produces the unified per-city report: distinct patients seen,
// distinct patients with a multi-diagnosis visit, classified counts per
// tracked group, uncertain/suspicious lesion count, and the city's
// rural/underserved flags from its first enriched occurrence. The rollup is
// anchored on the patient-count table, so every city with at least one visit
// appears with zero-filled counts even when nothing classified there.
func CityRollup(enriched []model.EnrichedRecord, classified []model.ClassifiedRecord, multi []model.MultiDiagnosisRow) []model.CityRollupRow {
	type cityAgg struct {
		displayCity   string
		displayState  string
		isRural       string
		isUnderserved string
		patients      map[string]struct{}
		multiPatients map[string]struct{}
	}

	order := make([]cityKey, 0)
	cities := make(map[cityKey]*cityAgg)

	byCity := func(city, state string) cityKey {
		return cityKey{city: normalize.Key(city), state: normalize.State(state)}
	}

	for _, rec := range enriched {
		k := byCity(rec.City, rec.State)
		agg, ok := cities[k]
		if !ok {
			agg = &cityAgg{
				displayCity:   rec.City,
				displayState:  rec.State,
				isRural:       yesNo(rec.IsRural),
				isUnderserved: yesNo(rec.IsUnderserved),
				patients:      make(map[string]struct{}),
				multiPatients: make(map[string]struct{}),
			}
			cities[k] = agg
			order = append(order, k)
		}
		agg.patients[rec.PatientID] = struct{}{}
	}

	multiSet := make(map[string]struct{}, len(multi))
	for _, row := range multi {
		multiSet[row.PatientID] = struct{}{}
	}
	for _, agg := range cities {
		for id := range agg.patients {
			if _, ok := multiSet[id]; ok {
				agg.multiPatients[id] = struct{}{}
			}
		}
	}

	groupCounts := make(map[cityKey]map[model.ReportGroup]int)
	suspicious := make(map[cityKey]int)
	for _, rec := range classified {
		k := byCity(rec.City, rec.State)
		if groupCounts[k] == nil {
			groupCounts[k] = make(map[model.ReportGroup]int)
		}
		groupCounts[k][rec.ReportGroup]++
		if rec.LesionCategory == model.CategoryUncertain {
			suspicious[k]++
		}
	}

	rows := make([]model.CityRollupRow, 0, len(order))
	for _, k := range order {
		agg := cities[k]
		rows = append(rows, model.CityRollupRow{
			City:              agg.displayCity,
			State:             agg.displayState,
			IsRural:           agg.isRural,
			IsUnderserved:     agg.isUnderserved,
			PatientCount:      len(agg.patients),
			MultiDiagPatients: len(agg.multiPatients),
			Precancerous:      groupCounts[k][model.GroupPrecancerous],
			NMSC:              groupCounts[k][model.GroupNMSC],
			Melanoma:          groupCounts[k][model.GroupMelanoma],
			Suspicious:        suspicious[k],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a := byCity(rows[i].City, rows[i].State)
		b := byCity(rows[j].City, rows[j].State)
		if a.city != b.city {
			return a.city < b.city
		}
		return a.state < b.state
	})
	return rows
}
