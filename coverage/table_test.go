package coverage

import (
	"bytes"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, []Summary{
		{GenomeID: "NC_045512.2", Mean: 9, Min: 1, Max: 20, SD: 7.1, Median: 5, Bucket1to4: 0.25, Bucket5to10: 0.25, Bucket10to19: 0.25, BucketGE20: 0.25, Total: 1},
		{GenomeID: "MN908947.3", Mean: 10, Min: 10, Max: 10, Median: 10, Bucket10to19: 1, Total: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected a header and 2 rows, got:\n%s", buf.String())
	}

	if expected := "gnm,covMean,covMin,covMax,covSD,covMedian,x1-x4,x5-x10,x10-x19,>x20,total"; lines[0] != expected {
		t.Errorf("\nHeader:   %s\nExpected: %s", lines[0], expected)
	}

	fields := strings.Split(lines[1], ",")
	if len(fields) != 11 || fields[0] != "NC_045512.2" {
		t.Fatalf("Unexpected first row %q", lines[1])
	}
	for i, expected := range []float64{9, 1, 20, 7.1, 5, 0.25, 0.25, 0.25, 0.25, 1} {
		got, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			t.Fatalf("column %d: %v", i+1, err)
		}
		if got != expected {
			t.Errorf("column %d: got %v, expected %v", i+1, got, expected)
		}
	}
}

func TestWriteTableFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "run_coverage_table.csv")

	if err := WriteTableFile(path, nil); !errors.Is(err, ErrOutputWrite) {
		t.Fatalf("Expected ErrOutputWrite, got %v", err)
	}
}

func TestTablePath(t *testing.T) {
	if got := TablePath("out", "run42"); got != filepath.Join("out", "run42_coverage_table.csv") {
		t.Errorf("Unexpected table path %s", got)
	}
}
