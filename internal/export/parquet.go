// Package export writes report tables in formats beyond CSV.
package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/skinscreen/screenreport/internal/model"
)

// WriteRollupParquet writes the city rollup as a Parquet file for downstream
// analytics tools. An empty rollup still produces a valid file with the full
// schema.
func WriteRollupParquet(path string, rows []model.CityRollupRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[model.RollupParquetRow](file)
	out := make([]model.RollupParquetRow, len(rows))
	for i, r := range rows {
		out[i] = r.ToParquetRow()
	}
	if len(out) > 0 {
		if _, err := writer.Write(out); err != nil {
			return fmt.Errorf("write parquet rows: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}
