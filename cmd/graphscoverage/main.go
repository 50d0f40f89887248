// graphscoverage summarizes per-genome coverage tables: weighted mean, SD and
// median depth plus the fraction of each genome in four depth buckets, written
// to <label>_coverage_table.csv, and one plot per genome of the fraction of
// the genome covered above each depth.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/carbocation/pikavirus"
	_ "github.com/carbocation/pikavirus/compileinfoprint"
	"github.com/carbocation/pikavirus/coverage"
)

func main() {
	var outDir, imageExt string
	var histogram, noPlots bool
	var histogramBins int

	flag.StringVar(&outDir, "out", ".", "Directory that receives the coverage table and the plots")
	flag.StringVar(&imageExt, "ext", coverage.DefaultImageExt, "Plot format: pdf, svg, eps, tif, jpg or png")
	flag.BoolVar(&noPlots, "noplots", false, "Only write the coverage table")
	flag.BoolVar(&histogram, "histogram", false, "Print a histogram of the mean coverage of the genomes to stderr")
	flag.IntVar(&histogramBins, "bins", 10, "Number of bins of the -histogram")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] label coverage.tsv [coverage.tsv ...]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Coverage tables are tab-delimited and headerless, with the columns genome, depth, fraction at depth, genome length, and the difference of the fraction below depth. They may be compressed and may be gs:// paths.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	expandedOut, err := pikavirus.ExpandHome(outDir)
	if err != nil {
		log.Fatalln(err)
	}

	cfg := coverage.Config{
		RunLabel:      flag.Arg(0),
		Inputs:        flag.Args()[1:],
		OutDir:        expandedOut,
		ImageExt:      imageExt,
		SkipPlots:     noPlots,
		HistogramBins: histogramBins,
	}
	if histogram {
		cfg.Histogram = os.Stderr
	}

	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatalln(err)
	}

	log.Println("Launched graphscoverage for run", cfg.RunLabel)

	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg coverage.Config) error {
	ctx := context.Background()

	opener, err := pikavirus.NewOpener(ctx, cfg.Inputs...)
	if err != nil {
		return err
	}
	defer opener.Close()

	return coverage.Run(ctx, cfg, opener)
}
