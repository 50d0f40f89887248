package fastqc

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
)

// Stage says whether a report was produced before or after read trimming.
type Stage string

const (
	Pre  Stage = "pre"
	Post Stage = "post"
)

// Record is one line of the intermediate QC table: the basic statistics of
// one report of one sample. The field order is the column order.
type Record struct {
	Sample         string `csv:"sample"`
	Stage          Stage  `csv:"stage"`
	Filename       string `csv:"filename"`
	SequenceLength string `csv:"sequence_length"`
	TotalSequences int64  `csv:"total_sequences"`
	GC             string `csv:"gc"`
	HTMLPath       string `csv:"html_path"`
}

// HTMLPath is where the pipeline publishes the HTML rendering of a
// fastqc_data.txt report.
func HTMLPath(resultDir, report string) string {
	return resultDir + "/raw_fastqc/" + strings.TrimSuffix(path.Base(report), ".txt") + ".html"
}

// Opener opens a report path, which may be local or remote.
type Opener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// ExtractConfig describes the reports of one sample.
type ExtractConfig struct {
	Sample    string
	PairedEnd bool
	ResultDir string
	Pre       []string // reports of the raw reads
	Post      []string // reports of the trimmed reads
}

// Validate checks that the number of reports matches the library layout.
func (c ExtractConfig) Validate() error {
	if c.Sample == "" {
		return fmt.Errorf("a sample name is required")
	}

	expected := 1
	if c.PairedEnd {
		expected = 2
	}

	if len(c.Pre) != expected || len(c.Post) != expected {
		return fmt.Errorf("expected %d pre and %d post reports for sample %s, got %d and %d", expected, expected, c.Sample, len(c.Pre), len(c.Post))
	}

	return nil
}

// Extract parses the reports of one sample and returns the pre-trimming
// records followed by the post-trimming records, each sorted by report path.
func Extract(ctx context.Context, cfg ExtractConfig, opener Opener) ([]Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(cfg.Pre)+len(cfg.Post))
	for _, stage := range []struct {
		Stage
		reports []string
	}{
		{Pre, cfg.Pre},
		{Post, cfg.Post},
	} {
		reports := append([]string{}, stage.reports...)
		sort.Strings(reports)

		for _, report := range reports {
			basic, err := parseReportFile(ctx, report, opener)
			if err != nil {
				return nil, err
			}

			out = append(out, Record{
				Sample:         cfg.Sample,
				Stage:          stage.Stage,
				Filename:       basic.Filename,
				SequenceLength: basic.SequenceLength,
				TotalSequences: basic.TotalSequences,
				GC:             basic.GC,
				HTMLPath:       HTMLPath(cfg.ResultDir, report),
			})
		}
	}

	return out, nil
}

func parseReportFile(ctx context.Context, report string, opener Opener) (Basic, error) {
	f, err := opener.Open(ctx, report)
	if err != nil {
		return Basic{}, err
	}
	defer f.Close()

	basic, err := ParseReport(f)
	if err != nil {
		return basic, fmt.Errorf("%s: %w", report, err)
	}

	return basic, nil
}

// WriteRecords writes records as comma-delimited lines without a header, so
// that the output of many samples can simply be concatenated.
func WriteRecords(w io.Writer, records []Record) error {
	return gocsv.MarshalCSVWithoutHeaders(records, gocsv.NewSafeCSVWriter(csv.NewWriter(w)))
}
