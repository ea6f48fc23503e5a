// mkfixture creates a small representative clinic-export fixture from a full
// EHR export. Two-pass: first scans all rows to find diverse candidates
// (every city, multi-diagnosis visits, missing diagnoses), then writes up to
// N rows preserving the original columns.
// Usage: go run ./cmd/mkfixture --in EHR_clinic_data.csv --out testdata/clinic-small.csv --rows 100
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	in := flag.String("in", "", "input clinic export CSV")
	out := flag.String("out", "testdata/clinic-small.csv", "output fixture CSV")
	maxRows := flag.Int("rows", 100, "max rows to output")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "--in is required")
		os.Exit(1)
	}

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read header: %v\n", err)
		os.Exit(1)
	}

	col := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
	cityIdx := col("city")
	stateIdx := col("state")
	dateIdx := col("service date")
	patientIdx := col("patient_id")
	diagIdx := col("diagnosis name")

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	// Pass 1: read all rows, note visit sizes and city coverage.
	var rows [][]string
	visitSize := make(map[string]int)
	for {
		row, readErr := r.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "read row: %v\n", readErr)
			os.Exit(1)
		}
		rows = append(rows, row)
		visitSize[cell(row, dateIdx)+"|"+cell(row, patientIdx)]++
	}

	// Pass 2: select rows. Priority: multi-diagnosis visits, then first row
	// per city, then rows with a missing diagnosis, then fill in file order.
	selected := make([]bool, len(rows))
	count := 0
	take := func(i int) {
		if !selected[i] && count < *maxRows {
			selected[i] = true
			count++
		}
	}

	for i, row := range rows {
		if visitSize[cell(row, dateIdx)+"|"+cell(row, patientIdx)] > 1 {
			take(i)
		}
	}
	seenCity := make(map[string]bool)
	for i, row := range rows {
		city := strings.ToLower(cell(row, cityIdx)) + "|" + strings.ToLower(cell(row, stateIdx))
		if !seenCity[city] {
			seenCity[city] = true
			take(i)
		}
	}
	for i, row := range rows {
		if cell(row, diagIdx) == "" {
			take(i)
		}
	}
	for i := range rows {
		take(i)
	}

	of, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer of.Close()

	w := csv.NewWriter(of)
	if err := w.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}
	written := 0
	for i, row := range rows {
		if !selected[i] {
			continue
		}
		if err := w.Write(row); err != nil {
			fmt.Fprintf(os.Stderr, "write row: %v\n", err)
			os.Exit(1)
		}
		written++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "flush output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d of %d rows to %s (%d cities)\n", written, len(rows), *out, len(seenCity))
}
