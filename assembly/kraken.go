// Package assembly picks, for every species detected by Kraken2, the NCBI
// assembly to be used as its reference genome.
package assembly

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Columns of a Kraken2 report
const (
	KrakenPercent = iota
	KrakenCladeReads
	KrakenTaxonReads
	KrakenRank
	KrakenTaxID
	KrakenName
)

const speciesRank = "S"

// ReadKrakenSpecies returns the taxids of every species-rank line of a Kraken2
// report.
func ReadKrakenSpecies(r io.Reader) (map[string]struct{}, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	out := make(map[string]struct{})
	for {
		cols, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if len(cols) <= KrakenTaxID {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("kraken report line %d: expected at least %d columns, got %d", line, KrakenTaxID+1, len(cols))
		}

		if strings.TrimSpace(cols[KrakenRank]) != speciesRank {
			continue
		}

		out[strings.TrimSpace(cols[KrakenTaxID])] = struct{}{}
	}

	return out, nil
}
