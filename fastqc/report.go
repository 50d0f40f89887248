// Package fastqc extracts the basic statistics of FastQC reports and merges
// them into the QC section of the pipeline's HTML summary.
package fastqc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Keys of the ">>Basic Statistics" module of fastqc_data.txt
const (
	keyFilename       = "Filename"
	keyTotalSequences = "Total Sequences"
	keySequenceLength = "Sequence length"
	keyGC             = "%GC"

	basicStatisticsModule = ">>Basic Statistics"
	endModule             = ">>END_MODULE"
)

// Basic holds the values of the basic statistics module. Sequence length and
// GC are kept verbatim; FastQC reports length ranges such as "35-151".
type Basic struct {
	Filename       string
	SequenceLength string
	TotalSequences int64
	GC             string
}

// ParseReport reads a fastqc_data.txt report.
func ParseReport(r io.Reader) (Basic, error) {
	out := Basic{}
	found := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	inModule := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.HasPrefix(line, basicStatisticsModule) {
			inModule = true
			continue
		}
		if !inModule {
			continue
		}
		if strings.HasPrefix(line, endModule) {
			break
		}

		cols := strings.SplitN(line, "\t", 2)
		if len(cols) != 2 {
			continue
		}
		key, value := cols[0], strings.TrimSpace(cols[1])

		switch key {
		case keyFilename:
			out.Filename = value
		case keyTotalSequences:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return out, fmt.Errorf("%s %q is not an integer", keyTotalSequences, value)
			}
			out.TotalSequences = n
		case keySequenceLength:
			out.SequenceLength = value
		case keyGC:
			out.GC = value
		default:
			continue
		}
		found[key] = true
	}
	if err := scanner.Err(); err != nil {
		return out, err
	}

	for _, key := range []string{keyFilename, keyTotalSequences, keySequenceLength, keyGC} {
		if !found[key] {
			return out, fmt.Errorf("no %q in the basic statistics of the report", key)
		}
	}

	return out, nil
}
