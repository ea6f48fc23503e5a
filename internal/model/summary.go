package model

import "time"

// RunSummary captures metrics from a single report run.
type RunSummary struct {
	RunID             string
	ClinicFiles       []string
	RowsRead          int64
	RowsEnriched      int64
	RowsFiltered      int64
	RowsClassified    int64
	SummaryGroups     int
	MultiDiagVisits   int
	CityRollupRows    int
	DurationEnrich    time.Duration
	DurationClassify  time.Duration
	DurationAggregate time.Duration
	DurationTotal     time.Duration
}
