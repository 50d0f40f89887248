// extractassemblies chooses a reference assembly for every species of a
// Kraken2 report, from an NCBI assembly_summary.txt (available under
// ftp://ftp.ncbi.nlm.nih.gov/genomes/refseq/), and writes them to
// chosen_assemblies_data.tsv.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/carbocation/pikavirus"
	"github.com/carbocation/pikavirus/assembly"
	_ "github.com/carbocation/pikavirus/compileinfoprint"
)

const outputName = "chosen_assemblies_data.tsv"

func main() {
	var report, summary, outDir string

	flag.StringVar(&report, "report", "", "Kraken2 report")
	flag.StringVar(&summary, "summary", "", "NCBI assembly_summary.txt")
	flag.StringVar(&outDir, "out", ".", "Directory that receives "+outputName)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -report kraken2_report -summary assembly_summary.txt\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if report == "" || summary == "" {
		flag.Usage()
		os.Exit(1)
	}

	expandedOut, err := pikavirus.ExpandHome(outDir)
	if err != nil {
		log.Fatalln(err)
	}

	if err := run(report, summary, filepath.Join(expandedOut, outputName)); err != nil {
		log.Fatalln(err)
	}
}

func run(report, summary, outPath string) error {
	ctx := context.Background()

	opener, err := pikavirus.NewOpener(ctx, report, summary)
	if err != nil {
		return err
	}
	defer opener.Close()

	choices, err := assembly.SelectFromFiles(ctx, report, summary, opener)
	if err != nil {
		return err
	}
	log.Println("Chose assemblies for", len(choices), "species")

	f, err := os.Create(outPath)
	if err != nil {
		return pfx.Err(err)
	}

	if err := assembly.WriteChoices(f, choices); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}
	log.Println("Wrote", outPath)

	return nil
}
