// mergequalitystats turns the combined output of extractfastqc into the HTML
// QC section of the summary report.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/carbocation/pfx"
	_ "github.com/carbocation/pikavirus/compileinfoprint"
	"github.com/carbocation/pikavirus/fastqc"
)

func main() {
	var input, outFile string

	flag.StringVar(&input, "file", "", "Output of extractfastqc for every sample. If not specified, reads from stdin")
	flag.StringVar(&outFile, "out", "", "Output file. If not specified, writes to stdout")
	flag.Parse()

	// Reader
	var in io.ReadCloser = os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		in = f
	}
	defer in.Close()

	// Writer
	var out io.WriteCloser = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		out = f
	}

	if err := run(in, out); err != nil {
		log.Fatalln(err)
	}

	if err := out.Close(); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func run(in io.Reader, out io.Writer) error {
	records, err := fastqc.ReadRecords(in)
	if err != nil {
		return pfx.Err(err)
	}
	log.Println("Loaded", len(records), "FastQC records")

	return fastqc.MergeHTML(out, records)
}
