package coverage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	first := writeFile(t, in, "first.tsv", "NC_045512.2\t1\t0.25\t29903\t0.25\n"+
		"NC_045512.2\t5\t0.25\t29903\t0.25\n"+
		"NC_045512.2\t10\t0.25\t29903\t0.25\n"+
		"NC_045512.2\t20\t0.25\t29903\t0.25\n")
	second := writeFile(t, in, "second.tsv", "MN908947.3\t10\t1\t29903\t1\n")

	var hist bytes.Buffer
	cfg := Config{
		RunLabel:  "run1",
		Inputs:    []string{first, second},
		OutDir:    out,
		ImageExt:  "png",
		Histogram: &hist,
	}

	if err := Run(context.Background(), cfg, nil); err != nil {
		t.Fatal(err)
	}

	table, err := os.ReadFile(filepath.Join(out, "run1_coverage_table.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(table)), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "NC_045512.2,") || !strings.HasPrefix(lines[2], "MN908947.3,") {
		t.Fatalf("Unexpected table:\n%s", table)
	}

	for _, genome := range []string{"NC_045512.2", "MN908947.3"} {
		if _, err := os.Stat(filepath.Join(out, genome+".png")); err != nil {
			t.Errorf("Missing plot for %s: %v", genome, err)
		}
	}

	if hist.Len() == 0 {
		t.Error("No histogram was printed")
	}
}

func TestRunLeavesNoPartialTable(t *testing.T) {
	for name, content := range map[string]string{
		"malformed":  "g1\t1\t1\t100\t1\ng2\t1\t1\t100\n",
		"degenerate": "g1\t1\t1\t100\t1\ng2\t1\t0\t100\t0\n",
	} {
		in := t.TempDir()
		out := t.TempDir()

		cfg := Config{
			RunLabel: "run1",
			Inputs:   []string{writeFile(t, in, "cov.tsv", content)},
			OutDir:   out,
		}

		err := Run(context.Background(), cfg, nil)
		if err == nil {
			t.Fatalf("%s: expected an error", name)
		}
		if name == "malformed" && !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%s: expected ErrMalformedInput, got %v", name, err)
		}
		if name == "degenerate" && !errors.Is(err, ErrDegenerateInput) {
			t.Errorf("%s: expected ErrDegenerateInput, got %v", name, err)
		}

		entries, err := os.ReadDir(out)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("%s: output directory is not empty: %v", name, entries)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{RunLabel: "run1", Inputs: []string{"a.tsv"}, ImageExt: ".PDF"}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.OutDir != "." || cfg.ImageExt != "pdf" || cfg.HistogramBins <= 0 {
		t.Errorf("Defaults were not applied: %+v", cfg)
	}

	for _, bad := range []Config{
		{Inputs: []string{"a.tsv"}},
		{RunLabel: "a/b", Inputs: []string{"a.tsv"}},
		{RunLabel: "run1"},
		{RunLabel: "run1", Inputs: []string{""}},
		{RunLabel: "run1", Inputs: []string{"a.tsv"}, ImageExt: "bmp"},
	} {
		if err := bad.Validate(); err == nil {
			t.Errorf("Expected %+v to be rejected", bad)
		}
	}
}
