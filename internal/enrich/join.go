// Package enrich attaches county, rural, and medically-underserved context to
// raw clinic records via two successive left joins against reference tables.
package enrich

import (
	"github.com/skinscreen/screenreport/internal/model"
	"github.com/skinscreen/screenreport/internal/normalize"
)

type geoKey struct {
	city  string
	state string
}

type countyKey struct {
	state  string
	county string
}

// Join produces one or more EnrichedRecords per ClinicRecord. Both joins are
// left-preserving: a record with no reference match keeps nil fields instead
// of being dropped. Duplicate reference keys fan out relationally, one output
// row per matching reference row, in reference input order.
func Join(clinic []model.ClinicRecord, geo []model.GeoRow, underserved []model.UnderservedRow) []model.EnrichedRecord {
	counties := make(map[geoKey][]string, len(geo))
	for _, g := range geo {
		k := geoKey{city: normalize.Key(g.City), state: normalize.State(g.State)}
		counties[k] = append(counties[k], g.County)
	}

	designations := make(map[countyKey][]model.UnderservedRow, len(underserved))
	for _, u := range underserved {
		k := countyKey{state: normalize.State(u.State), county: normalize.Key(u.County)}
		designations[k] = append(designations[k], u)
	}

	out := make([]model.EnrichedRecord, 0, len(clinic))
	for _, rec := range clinic {
		state := normalize.State(rec.State)

		matched := counties[geoKey{city: normalize.Key(rec.City), state: state}]
		if len(matched) == 0 {
			out = append(out, model.EnrichedRecord{ClinicRecord: rec})
			continue
		}

		for _, county := range matched {
			rows := designations[countyKey{state: state, county: normalize.Key(county)}]
			if len(rows) == 0 {
				out = append(out, model.EnrichedRecord{
					ClinicRecord: rec,
					County:       &county,
				})
				continue
			}
			for _, u := range rows {
				out = append(out, model.EnrichedRecord{
					ClinicRecord:    rec,
					County:          &county,
					DesignationType: u.DesignationType,
					RuralStatus:     u.RuralStatus,
					IsUnderserved:   u.DesignationType != nil,
					IsRural:         normalize.IsRural(u.RuralStatus),
				})
			}
		}
	}
	return out
}
