package coverage

import (
	"context"
	"fmt"
	"log"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/pikavirus"
)

// Run parses every input, aggregates every genome, and only then writes the
// coverage table followed by one plot per genome. A nil opener reads from the
// local filesystem.
func Run(ctx context.Context, cfg Config, opener Opener) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if opener == nil {
		opener = pikavirus.Opener{}
	}

	rows, err := ReadFiles(ctx, cfg.Inputs, opener)
	if err != nil {
		return err
	}
	log.Println("Loaded", len(rows), "coverage rows from", len(cfg.Inputs), "files")

	results, err := Aggregate(rows)
	if err != nil {
		return err
	}
	log.Println("Aggregated", len(results), "genomes")

	summaries := make([]Summary, 0, len(results))
	for _, res := range results {
		summaries = append(summaries, res.Summary)
	}

	tablePath := TablePath(cfg.OutDir, cfg.RunLabel)
	if err := WriteTableFile(tablePath, summaries); err != nil {
		return err
	}
	log.Println("Wrote", tablePath)

	if cfg.Histogram != nil {
		if err := printMeanHistogram(cfg, summaries); err != nil {
			return err
		}
	}

	if cfg.SkipPlots {
		return nil
	}

	for _, res := range results {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := PlotSeries(PlotPath(cfg.OutDir, res.Summary.GenomeID, cfg.ImageExt), res.Summary.GenomeID, res.Points); err != nil {
			return err
		}
	}
	log.Println("Plotted", len(results), "genomes")

	return nil
}

func printMeanHistogram(cfg Config, summaries []Summary) error {
	if len(summaries) == 0 {
		return nil
	}

	means := make([]float64, 0, len(summaries))
	spread := false
	for _, v := range summaries {
		means = append(means, v.Mean)
		spread = spread || v.Mean != means[0]
	}

	// Bucketing needs a non-empty range
	if !spread {
		_, err := fmt.Fprintf(cfg.Histogram, "All %d genomes have a mean coverage of %g\n", len(means), means[0])
		return err
	}

	hist := histogram.Hist(cfg.HistogramBins, means)
	return histogram.Fprint(cfg.Histogram, hist, histogram.Linear(40))
}
