package coverage

import (
	"fmt"
	"math"
	"strconv"
)

// Column positions of a coverage table, which has no header. This is the
// layout written by `bedtools genomecov` with the difference of the fraction
// below each threshold appended.
const (
	ColGenome = iota
	ColThreshold
	ColFractionAtThreshold
	ColGenomeLength
	ColFractionBelowDiff

	NumColumns
)

// Row is one line of a coverage table.
type Row struct {
	GenomeID            string
	Threshold           int // coverage depth
	FractionAtThreshold float64
	GenomeLength        int
	FractionBelowDiff   float64 // weight of Threshold in every statistic
}

// ParseRow maps the fields of one line onto a Row. The returned error describes
// which expectation was violated; callers attach the file and line.
func ParseRow(fields []string) (Row, error) {
	if len(fields) != NumColumns {
		return Row{}, fmt.Errorf("expected %d columns, got %d", NumColumns, len(fields))
	}

	if fields[ColGenome] == "" {
		return Row{}, fmt.Errorf("empty genome identifier")
	}

	threshold, err := strconv.Atoi(fields[ColThreshold])
	if err != nil {
		return Row{}, fmt.Errorf("coverage threshold %q is not an integer", fields[ColThreshold])
	} else if threshold < 0 {
		return Row{}, fmt.Errorf("coverage threshold %d is negative", threshold)
	}

	fractionAt, err := parseFraction("fraction at threshold", fields[ColFractionAtThreshold])
	if err != nil {
		return Row{}, err
	}

	genomeLength, err := strconv.Atoi(fields[ColGenomeLength])
	if err != nil {
		return Row{}, fmt.Errorf("genome length %q is not an integer", fields[ColGenomeLength])
	} else if genomeLength <= 0 {
		return Row{}, fmt.Errorf("genome length %d is not positive", genomeLength)
	}

	belowDiff, err := parseFraction("fraction below threshold diff", fields[ColFractionBelowDiff])
	if err != nil {
		return Row{}, err
	} else if belowDiff < 0 {
		return Row{}, fmt.Errorf("fraction below threshold diff %v is negative", belowDiff)
	}

	return Row{
		GenomeID:            fields[ColGenome],
		Threshold:           threshold,
		FractionAtThreshold: fractionAt,
		GenomeLength:        genomeLength,
		FractionBelowDiff:   belowDiff,
	}, nil
}

func parseFraction(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s %q is not a finite number", name, value)
	}

	return f, nil
}
