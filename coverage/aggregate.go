package coverage

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Lower bounds of the depth buckets: [1,5), [5,10), [10,20) and [20,∞).
const (
	bucketLow    = 1
	bucketMid    = 5
	bucketHigh   = 10
	bucketDeep   = 20
	percentScale = 100.0
)

// Point is one step of the curve plotted for a genome: the percentage of the
// genome covered above Threshold.
type Point struct {
	Threshold            int
	FractionAbovePercent float64
}

// Result is everything the output stage needs for one genome.
type Result struct {
	Summary Summary
	Points  []Point
}

// Series holds the rows of a single genome, sorted by threshold.
type Series struct {
	GenomeID string
	Rows     []Row
}

// Group splits rows by genome, in the order each genome is first seen, and
// sorts the rows of each genome by threshold. Rows sharing a threshold keep
// their input order.
func Group(rows []Row) []Series {
	index := make(map[string]int)
	out := make([]Series, 0)

	for _, row := range rows {
		i, seen := index[row.GenomeID]
		if !seen {
			i = len(out)
			index[row.GenomeID] = i
			out = append(out, Series{GenomeID: row.GenomeID})
		}
		out[i].Rows = append(out[i].Rows, row)
	}

	for _, s := range out {
		sort.SliceStable(s.Rows, func(i, j int) bool {
			return s.Rows[i].Threshold < s.Rows[j].Threshold
		})
	}

	return out
}

// Aggregate summarizes every genome found in rows. It performs no I/O. The
// first genome that cannot be summarized aborts the aggregation.
func Aggregate(rows []Row) ([]Result, error) {
	series := Group(rows)

	out := make([]Result, 0, len(series))
	for _, s := range series {
		res, err := s.Summarize()
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}

// Summarize computes the weighted statistics of one genome. The rows must
// already be sorted by threshold, as Group leaves them.
func (s Series) Summarize() (Result, error) {
	if len(s.Rows) == 0 {
		return Result{}, &Error{Kind: ErrDegenerateInput, Genome: s.GenomeID, Err: fmt.Errorf("no coverage rows")}
	}

	thresholds := make([]float64, len(s.Rows))
	weights := make([]float64, len(s.Rows))
	points := make([]Point, len(s.Rows))

	sum := Summary{GenomeID: s.GenomeID}

	var cumBelow float64
	allZero := true
	for i, row := range s.Rows {
		if i > 0 && row.Threshold < s.Rows[i-1].Threshold {
			return Result{}, &Error{Kind: ErrMalformedInput, Genome: s.GenomeID, Err: fmt.Errorf("threshold %d follows %d; rows are not sorted", row.Threshold, s.Rows[i-1].Threshold)}
		}

		w := row.FractionBelowDiff
		if w < 0 {
			return Result{}, &Error{Kind: ErrMalformedInput, Genome: s.GenomeID, Err: fmt.Errorf("negative weight %v at threshold %d", w, row.Threshold)}
		}
		if w != 0 {
			allZero = false
		}

		thresholds[i] = float64(row.Threshold)
		weights[i] = w

		cumBelow += w
		points[i] = Point{Threshold: row.Threshold, FractionAbovePercent: (1 - cumBelow) * percentScale}

		switch {
		case row.Threshold >= bucketDeep:
			sum.BucketGE20 += w
		case row.Threshold >= bucketHigh:
			sum.Bucket10to19 += w
		case row.Threshold >= bucketMid:
			sum.Bucket5to10 += w
		case row.Threshold >= bucketLow:
			sum.Bucket1to4 += w
		}
	}

	if allZero {
		return Result{}, &Error{Kind: ErrDegenerateInput, Genome: s.GenomeID, Err: fmt.Errorf("every fraction below threshold diff is zero")}
	}

	// Second central moment about the weighted mean, divided by the weight
	// sum: the population variance.
	sum.Mean = stat.Mean(thresholds, weights)
	sum.SD = math.Sqrt(math.Max(stat.Moment(2, thresholds, weights), 0))

	// Empirical quantile: the first threshold whose cumulative weight reaches
	// half of the total weight.
	sum.Median = int(stat.Quantile(0.5, stat.Empirical, thresholds, weights))

	lowest, err := stats.Min(thresholds)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", s.GenomeID, err)
	}
	highest, err := stats.Max(thresholds)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", s.GenomeID, err)
	}
	sum.Min, sum.Max = int(lowest), int(highest)

	sum.Total = sum.Bucket1to4 + sum.Bucket5to10 + sum.Bucket10to19 + sum.BucketGE20

	return Result{Summary: sum, Points: points}, nil
}
