// extractfastqc prints one comma-delimited line per FastQC report of a sample
// (sample, pre|post, filename, sequence length, total sequences, %GC, HTML
// report path). The lines of all samples are later combined by
// mergequalitystats.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/carbocation/pikavirus"
	_ "github.com/carbocation/pikavirus/compileinfoprint"
	"github.com/carbocation/pikavirus/fastqc"
)

func main() {
	cfg := fastqc.ExtractConfig{}
	var outFile string

	flag.StringVar(&cfg.Sample, "sample", "", "Sample name")
	flag.BoolVar(&cfg.PairedEnd, "paired", false, "Reads are paired-end: expect 2 pre-trimming and 2 post-trimming reports")
	flag.StringVar(&cfg.ResultDir, "resultdir", "results", "Directory in which the pipeline publishes the FastQC HTML reports")
	flag.StringVar(&outFile, "out", "", "Output file. If not specified, writes to stdout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -sample name [-paired] pre_fastqc_data.txt [pre2] post_fastqc_data.txt [post2]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	reports := flag.Args()
	half := len(reports) / 2
	cfg.Pre, cfg.Post = reports[:half], reports[half:]

	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatalln(err)
	}

	if err := run(cfg, outFile); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg fastqc.ExtractConfig, outFile string) error {
	ctx := context.Background()

	opener, err := pikavirus.NewOpener(ctx, append(append([]string{}, cfg.Pre...), cfg.Post...)...)
	if err != nil {
		return err
	}
	defer opener.Close()

	records, err := fastqc.Extract(ctx, cfg, opener)
	if err != nil {
		return err
	}
	log.Println("Extracted", len(records), "reports of sample", cfg.Sample)

	if outFile == "" {
		return fastqc.WriteRecords(os.Stdout, records)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}

	if err := fastqc.WriteRecords(f, records); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
