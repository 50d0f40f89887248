package assembly

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Columns of the NCBI assembly_summary.txt that are used here
const (
	SummaryAccession      = 0
	SummaryRefseqCategory = 4
	SummaryTaxID          = 5
	SummarySpeciesTaxID   = 6
	SummaryOrganismName   = 7
	SummaryAssemblyLevel  = 11
	SummaryGenomeRep      = 13
	SummaryFTPPath        = 19
)

// Assembly is one line of an NCBI assembly summary.
type Assembly struct {
	Accession      string
	RefseqCategory string
	TaxID          string
	SpeciesTaxID   string
	OrganismName   string
	AssemblyLevel  string
	GenomeRep      string
	FTPPath        string
}

// ReadAssemblySummary reads an NCBI assembly_summary.txt, as published under
// ftp://ftp.ncbi.nlm.nih.gov/genomes/refseq/. Comment lines are skipped.
func ReadAssemblySummary(r io.Reader) ([]Assembly, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	out := make([]Assembly, 0)
	for {
		cols, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if len(cols) <= SummaryFTPPath {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("assembly summary line %d: expected at least %d columns, got %d", line, SummaryFTPPath+1, len(cols))
		}

		out = append(out, Assembly{
			Accession:      cols[SummaryAccession],
			RefseqCategory: cols[SummaryRefseqCategory],
			TaxID:          cols[SummaryTaxID],
			SpeciesTaxID:   cols[SummarySpeciesTaxID],
			OrganismName:   cols[SummaryOrganismName],
			AssemblyLevel:  cols[SummaryAssemblyLevel],
			GenomeRep:      cols[SummaryGenomeRep],
			FTPPath:        cols[SummaryFTPPath],
		})
	}

	return out, nil
}
