package export

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/skinscreen/screenreport/internal/model"
)

func readRollup(t *testing.T, path string) []model.RollupParquetRow {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		t.Fatalf("open parquet: %v", err)
	}
	reader := parquet.NewGenericReader[model.RollupParquetRow](pf)
	defer reader.Close()

	var out []model.RollupParquetRow
	buf := make([]model.RollupParquetRow, 16)
	for {
		n, readErr := reader.Read(buf)
		out = append(out, buf[:n]...)
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			t.Fatalf("read parquet: %v", readErr)
		}
	}
	return out
}

func TestWriteRollupParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollup.parquet")
	rows := []model.CityRollupRow{
		{
			City: "Austin", State: "TX", IsRural: "Yes", IsUnderserved: "Yes",
			PatientCount: 12, MultiDiagPatients: 3,
			Precancerous: 4, NMSC: 2, Melanoma: 1, Suspicious: 2,
		},
		{City: "Dallas", State: "TX", IsRural: "No", IsUnderserved: "No", PatientCount: 1},
	}

	if err := WriteRollupParquet(path, rows); err != nil {
		t.Fatalf("WriteRollupParquet: %v", err)
	}

	got := readRollup(t, path)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].City != "Austin" || got[0].PatientCount != 12 || got[0].Melanoma != 1 {
		t.Errorf("row 0 = %+v", got[0])
	}
	if got[1].City != "Dallas" || got[1].NMSC != 0 {
		t.Errorf("row 1 = %+v", got[1])
	}
}

func TestWriteRollupParquet_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollup.parquet")
	if err := WriteRollupParquet(path, nil); err != nil {
		t.Fatalf("WriteRollupParquet on empty rollup: %v", err)
	}
	if got := readRollup(t, path); len(got) != 0 {
		t.Errorf("expected empty file, got %d rows", len(got))
	}
}
