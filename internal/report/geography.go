package report

import (
	"sort"

	"github.com/skinscreen/screenreport/internal/model"
	"github.com/skinscreen/screenreport/internal/normalize"
)

type placeKey struct {
	state  string
	county string
	city   string
}

type placeGroupKey struct {
	place placeKey
	group model.ReportGroup
}

// place keeps the first-seen display casing for a normalized location key.
type place struct {
	state  string
	county string
	city   string
}

// GeoSummary breaks classified records down by location: counts per
// (state, county, city, group) and totals per (state, county, city).
// Records whose county never resolved have no place on the map and are
// excluded here; they still count in every other view.
func GeoSummary(records []model.ClassifiedRecord) ([]model.GeoGroupCountRow, []model.GeoTotalRow) {
	display := make(map[placeKey]place)
	groupCounts := make(map[placeGroupKey]int)
	totals := make(map[placeKey]int)

	for _, rec := range records {
		if rec.County == nil {
			continue
		}
		k := placeKey{
			state:  normalize.State(rec.State),
			county: normalize.Key(*rec.County),
			city:   normalize.Key(rec.City),
		}
		if _, seen := display[k]; !seen {
			display[k] = place{state: rec.State, county: *rec.County, city: rec.City}
		}
		groupCounts[placeGroupKey{place: k, group: rec.ReportGroup}]++
		totals[k]++
	}

	byGroup := make([]model.GeoGroupCountRow, 0, len(groupCounts))
	for k, n := range groupCounts {
		d := display[k.place]
		byGroup = append(byGroup, model.GeoGroupCountRow{
			State:  d.state,
			County: d.county,
			City:   d.city,
			Group:  k.group,
			Count:  n,
		})
	}
	sort.Slice(byGroup, func(i, j int) bool {
		a, b := byGroup[i], byGroup[j]
		ak := placeKey{normalize.State(a.State), normalize.Key(a.County), normalize.Key(a.City)}
		bk := placeKey{normalize.State(b.State), normalize.Key(b.County), normalize.Key(b.City)}
		if ak != bk {
			return lessPlace(ak, bk)
		}
		return a.Group < b.Group
	})

	byPlace := make([]model.GeoTotalRow, 0, len(totals))
	for k, n := range totals {
		d := display[k]
		byPlace = append(byPlace, model.GeoTotalRow{
			State:  d.state,
			County: d.county,
			City:   d.city,
			Total:  n,
		})
	}
	sort.Slice(byPlace, func(i, j int) bool {
		a, b := byPlace[i], byPlace[j]
		return lessPlace(
			placeKey{normalize.State(a.State), normalize.Key(a.County), normalize.Key(a.City)},
			placeKey{normalize.State(b.State), normalize.Key(b.County), normalize.Key(b.City)},
		)
	})

	return byGroup, byPlace
}

func lessPlace(a, b placeKey) bool {
	if a.state != b.state {
		return a.state < b.state
	}
	if a.county != b.county {
		return a.county < b.county
	}
	return a.city < b.city
}
