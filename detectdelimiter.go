package pikavirus

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// The detector returns its candidates in no particular order, and identifiers
// such as NC_045512.2 make '_' look like a perfectly consistent delimiter. Only
// conventional delimiters are ever chosen, in this order.
var preferredDelimiters = []rune{'\t', ',', ';', '|'}

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file. If nothing conventional is
// detected, a comma is assumed.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	for _, want := range preferredDelimiters {
		for _, got := range delimiters {
			if got == string(want) {
				return want
			}
		}
	}

	return ','
}
