package coverage

import (
	"fmt"
	"io"
	"strings"
)

// Config holds every parameter of a coverage run. It is validated once, by
// Validate, before any input is read.
type Config struct {
	// RunLabel names the output table: <RunLabel>_coverage_table.csv
	RunLabel string

	// Inputs are the coverage tables, local or gs:// paths, optionally
	// compressed.
	Inputs []string

	// OutDir receives the table and the plots. Defaults to the working
	// directory.
	OutDir string

	// ImageExt selects the plot format. Defaults to DefaultImageExt.
	ImageExt string

	// SkipPlots disables plot rendering; only the table is written.
	SkipPlots bool

	// If set, a histogram of per-genome mean coverage is printed here.
	Histogram     io.Writer
	HistogramBins int
}

// Validate fills in defaults and reports the first invalid parameter.
func (c *Config) Validate() error {
	if c.RunLabel == "" {
		return fmt.Errorf("a run label is required")
	}

	if strings.ContainsAny(c.RunLabel, `/\`) {
		return fmt.Errorf("run label %q must not contain path separators", c.RunLabel)
	}

	if len(c.Inputs) == 0 {
		return fmt.Errorf("at least one coverage table is required")
	}

	for i, input := range c.Inputs {
		if input == "" {
			return fmt.Errorf("coverage table #%d has an empty path", i+1)
		}
	}

	if c.OutDir == "" {
		c.OutDir = "."
	}

	if c.ImageExt == "" {
		c.ImageExt = DefaultImageExt
	}
	c.ImageExt = NormalizeImageExt(c.ImageExt)
	if !SupportedImageExt(c.ImageExt) {
		return fmt.Errorf("image extension %q is not supported", c.ImageExt)
	}

	if c.HistogramBins <= 0 {
		c.HistogramBins = 10
	}

	return nil
}
