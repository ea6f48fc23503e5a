// Package report runs the screening report pipeline and computes its five
// result tables: enrichment, keyword filtering, classification, aggregation.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skinscreen/screenreport/internal/classify"
	"github.com/skinscreen/screenreport/internal/enrich"
	"github.com/skinscreen/screenreport/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Inputs are the in-memory tables one run consumes. Keywords is the
// case-insensitive substring list the diagnosis filter ORs together.
type Inputs struct {
	Clinic      []model.ClinicRecord
	Geo         []model.GeoRow
	Underserved []model.UnderservedRow
	Keywords    []string
}

// Result holds the five report tables plus run metrics. Enriched and
// Classified are the intermediate stage outputs, kept for callers that want
// to inspect or re-aggregate them.
type Result struct {
	Enriched   []model.EnrichedRecord
	Classified []model.ClassifiedRecord

	GroupSummary     []model.GroupSummaryRow
	MultiDiagnoses   []model.MultiDiagnosisRow
	GeoByGroup       []model.GeoGroupCountRow
	GeoTotals        []model.GeoTotalRow
	UnderservedRural []model.UnderservedRuralRow
	CityRollup       []model.CityRollupRow

	Summary *model.RunSummary
}

// Run executes the full pipeline: enrich → filter → classify → aggregate.
// Each stage consumes its predecessor's output by value; nothing is mutated
// across stage boundaries. An empty input produces empty, correctly shaped
// tables rather than an error.
func Run(log zerolog.Logger, in Inputs) *Result {
	totalStart := time.Now()
	runID := uuid.New()
	log = log.With().Str("run_id", runID.String()).Logger()

	log.Info().
		Int("clinic_rows", len(in.Clinic)).
		Int("geo_rows", len(in.Geo)).
		Int("underserved_rows", len(in.Underserved)).
		Int("keywords", len(in.Keywords)).
		Msg("starting report run")

	enrichStart := time.Now()
	enriched := enrich.Join(in.Clinic, in.Geo, in.Underserved)
	enrichDur := time.Since(enrichStart)
	log.Info().
		Int("rows_in", len(in.Clinic)).
		Int("rows_enriched", len(enriched)).
		Str("duration", enrichDur.String()).
		Msg("enrichment complete")

	classifyStart := time.Now()
	filtered := classify.FilterByKeywords(enriched, in.Keywords)
	classified := classify.Classify(filtered)
	classifyDur := time.Since(classifyStart)
	log.Info().
		Int("rows_filtered", len(filtered)).
		Int("rows_classified", len(classified)).
		Str("duration", classifyDur.String()).
		Msg("classification complete")
	if len(filtered) == 0 {
		log.Warn().Msg("no diagnoses matched the keyword filter")
	}

	aggStart := time.Now()
	res := &Result{
		Enriched:   enriched,
		Classified: classified,
	}
	res.GroupSummary = GroupSummary(classified)
	res.MultiDiagnoses = MultipleDiagnoses(enriched)
	res.GeoByGroup, res.GeoTotals = GeoSummary(classified)
	res.UnderservedRural = UnderservedRural(classified)
	res.CityRollup = CityRollup(enriched, classified, res.MultiDiagnoses)
	aggDur := time.Since(aggStart)

	res.Summary = &model.RunSummary{
		RunID:             runID.String(),
		RowsRead:          int64(len(in.Clinic)),
		RowsEnriched:      int64(len(enriched)),
		RowsFiltered:      int64(len(filtered)),
		RowsClassified:    int64(len(classified)),
		SummaryGroups:     len(res.GroupSummary),
		MultiDiagVisits:   len(res.MultiDiagnoses),
		CityRollupRows:    len(res.CityRollup),
		DurationEnrich:    enrichDur,
		DurationClassify:  classifyDur,
		DurationAggregate: aggDur,
		DurationTotal:     time.Since(totalStart),
	}

	log.Info().
		Int64("rows_enriched", res.Summary.RowsEnriched).
		Int64("rows_classified", res.Summary.RowsClassified).
		Int("multi_diagnosis_visits", res.Summary.MultiDiagVisits).
		Int("city_rollup_rows", res.Summary.CityRollupRows).
		Str("total_duration", res.Summary.DurationTotal.String()).
		Msg("report run complete")

	return res
}
