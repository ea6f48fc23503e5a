package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/skinscreen/screenreport/internal/csvio"
	"github.com/skinscreen/screenreport/internal/exitcode"
	"github.com/skinscreen/screenreport/internal/export"
	"github.com/skinscreen/screenreport/internal/logging"
	"github.com/skinscreen/screenreport/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full screening report pipeline",
	RunE:  runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringSliceVar(&cfg.ClinicPaths, "clinic", nil, "Clinic export CSV (repeatable; files are concatenated)")
	f.StringVar(&cfg.GeoPath, "geo", "", "City/county reference CSV (required)")
	f.StringVar(&cfg.UnderservedPath, "mua", "", "HRSA medically-underserved-area reference CSV (required)")
	f.StringVar(&cfg.OutDir, "out", ".", "Directory for the report files")
	f.BoolVar(&cfg.Parquet, "parquet", false, "Additionally export the city rollup as Parquet")
	_ = reportCmd.MarkFlagRequired("clinic")
	_ = reportCmd.MarkFlagRequired("geo")
	_ = reportCmd.MarkFlagRequired("mua")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if keywordsFile != "" {
		if err := cfg.LoadKeywordsFromFile(keywordsFile); err != nil {
			log.Error().Err(err).Msg("keyword config failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	clinic, err := csvio.ReadClinicRecords(cfg.ClinicPaths...)
	if err != nil {
		log.Error().Err(err).Msg("reading clinic exports failed")
		os.Exit(exitcode.InputError)
	}
	geo, err := csvio.ReadGeoReference(cfg.GeoPath)
	if err != nil {
		log.Error().Err(err).Msg("reading geo reference failed")
		os.Exit(exitcode.InputError)
	}
	underserved, err := csvio.ReadUnderservedReference(cfg.UnderservedPath)
	if err != nil {
		log.Error().Err(err).Msg("reading underserved reference failed")
		os.Exit(exitcode.InputError)
	}

	res := report.Run(log, report.Inputs{
		Clinic:      clinic,
		Geo:         geo,
		Underserved: underserved,
		Keywords:    cfg.Keywords,
	})

	if err := writeReports(log, res); err != nil {
		log.Error().Err(err).Msg("writing reports failed")
		os.Exit(exitcode.ExportError)
	}

	fmt.Printf("Report complete: %d records enriched, %d classified, %d cities (%.1fs)\n",
		res.Summary.RowsEnriched, res.Summary.RowsClassified,
		res.Summary.CityRollupRows, res.Summary.DurationTotal.Seconds())
	return nil
}

func writeReports(log zerolog.Logger, res *report.Result) error {
	now := time.Now()
	out := func(base string) string {
		return filepath.Join(cfg.OutDir, csvio.ReportFilename(base, now))
	}

	writes := []struct {
		path  string
		write func(string) error
	}{
		{out("diagnosis_summary_counts"), func(p string) error { return csvio.WriteGroupSummary(p, res.GroupSummary) }},
		{out("multiple_diagnoses"), func(p string) error { return csvio.WriteMultiDiagnoses(p, res.MultiDiagnoses) }},
		{out("geographic_group_counts"), func(p string) error { return csvio.WriteGeoByGroup(p, res.GeoByGroup) }},
		{out("geographic_totals"), func(p string) error { return csvio.WriteGeoTotals(p, res.GeoTotals) }},
		{out("underserved_rural_summary"), func(p string) error { return csvio.WriteUnderservedRural(p, res.UnderservedRural) }},
		{out("summary_report"), func(p string) error { return csvio.WriteCityRollup(p, res.CityRollup) }},
	}
	for _, w := range writes {
		if err := w.write(w.path); err != nil {
			return &report.PipelineError{Phase: "export", Err: err}
		}
		log.Info().Str("file", w.path).Msg("report written")
	}

	if cfg.Parquet {
		path := filepath.Join(cfg.OutDir,
			fmt.Sprintf("summary_report_%s.parquet", now.Format("02-Jan-2006")))
		if err := export.WriteRollupParquet(path, res.CityRollup); err != nil {
			return &report.PipelineError{Phase: "export", Err: err}
		}
		log.Info().Str("file", path).Msg("parquet rollup written")
	}
	return nil
}
