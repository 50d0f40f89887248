package coverage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Summary is one row of the coverage table. The csv tags are the column
// headers expected downstream.
type Summary struct {
	GenomeID     string  `csv:"gnm"`
	Mean         float64 `csv:"covMean"`
	Min          int     `csv:"covMin"`
	Max          int     `csv:"covMax"`
	SD           float64 `csv:"covSD"`
	Median       int     `csv:"covMedian"`
	Bucket1to4   float64 `csv:"x1-x4"`
	Bucket5to10  float64 `csv:"x5-x10"`
	Bucket10to19 float64 `csv:"x10-x19"`
	BucketGE20   float64 `csv:">x20"`
	Total        float64 `csv:"total"` // sum of the four buckets
}

// TablePath is where the coverage table of a run is written.
func TablePath(outDir, runLabel string) string {
	return filepath.Join(outDir, runLabel+"_coverage_table.csv")
}

// WriteTable writes summaries as comma-delimited CSV with a header row.
func WriteTable(w io.Writer, summaries []Summary) error {
	return gocsv.MarshalCSV(summaries, gocsv.NewSafeCSVWriter(csv.NewWriter(w)))
}

// WriteTableFile creates (or truncates) path and writes the table into it.
func WriteTableFile(path string, summaries []Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Kind: ErrOutputWrite, Path: path, Err: err}
	}

	if err := WriteTable(f, summaries); err != nil {
		f.Close()
		return &Error{Kind: ErrOutputWrite, Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &Error{Kind: ErrOutputWrite, Path: path, Err: fmt.Errorf("closing: %w", err)}
	}

	return nil
}
