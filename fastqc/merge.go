package fastqc

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"sort"

	"github.com/carbocation/pikavirus"
	"github.com/gocarina/gocsv"
)

// ReadRecords reads the concatenated output of WriteRecords. The delimiter is
// detected, so tab-delimited tables are accepted too. Records are returned
// sorted by sample, stage and filename.
func ReadRecords(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = pikavirus.DetermineDelimiter(bytes.NewReader(data))
	cr.FieldsPerRecord = 7

	records := []Record{}
	if err := gocsv.UnmarshalCSVWithoutHeaders(cr, &records); err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Sample != records[j].Sample {
			return records[i].Sample < records[j].Sample
		}
		if records[i].Stage != records[j].Stage {
			return records[i].Stage < records[j].Stage
		}
		return records[i].Filename < records[j].Filename
	})

	return records, nil
}

// stageTable keeps one record per sample, in the order samples were first seen.
// Later records of a sample replace earlier ones.
type stageTable struct {
	samples  []string
	bySample map[string]Record
}

func newStageTable(records []Record, stage Stage) stageTable {
	out := stageTable{bySample: make(map[string]Record)}

	for _, rec := range records {
		if rec.Stage != stage {
			continue
		}
		if _, exists := out.bySample[rec.Sample]; !exists {
			out.samples = append(out.samples, rec.Sample)
		}
		out.bySample[rec.Sample] = rec
	}

	return out
}

// MergeHTML writes the QC section of the summary report: a table with the
// basic statistics of every sample before and after trimming, then links to
// the individual FastQC reports.
func MergeHTML(w io.Writer, records []Record) error {
	pre := newStageTable(records, Pre)
	post := newStageTable(records, Post)

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "<table class='table'>")
	fmt.Fprintln(bw, "<tr>")
	fmt.Fprintln(bw, "<thead>")
	fmt.Fprintln(bw, "<th>Sample</th>")
	for _, sample := range pre.samples {
		fmt.Fprintf(bw, "<th>%s</th>\n", html.EscapeString(sample))
	}
	fmt.Fprintln(bw, "</thead><tbody></tr>")

	fmt.Fprintf(bw, "<tr><td colspan='%d' class='info'>Pre-Filter</td></tr>\n", len(pre.samples)+1)
	pre.writeRows(bw)

	fmt.Fprintf(bw, "<tr><td colspan='%d' class='info'>Post-Filter</td></tr>\n", len(post.samples)+1)
	post.writeRows(bw)

	fmt.Fprintln(bw, "</tbody></table></div><div><br>")

	fmt.Fprintln(bw, "<p>Pre-Filter Reports:</p><ul>")
	pre.writeLinks(bw)
	fmt.Fprintln(bw, "</ul>")

	fmt.Fprintln(bw, "<p>Post-Filter Reports:</p><ul>")
	post.writeLinks(bw)
	fmt.Fprintln(bw, "</ul>")

	return bw.Flush()
}

func (s stageTable) writeRows(w io.Writer) {
	for _, row := range []struct {
		label string
		value func(Record) string
	}{
		{"Sequence length", func(r Record) string { return r.SequenceLength }},
		{"Total Sequences", func(r Record) string { return fmt.Sprint(r.TotalSequences) }},
		{"%GC", func(r Record) string { return r.GC }},
	} {
		fmt.Fprintln(w, "<tr>")
		fmt.Fprintf(w, "<td>%s</td>\n", row.label)
		for _, sample := range s.samples {
			fmt.Fprintf(w, "<td>%s</td>\n", html.EscapeString(row.value(s.bySample[sample])))
		}
		fmt.Fprintln(w, "</tr>")
	}
}

func (s stageTable) writeLinks(w io.Writer) {
	for _, sample := range s.samples {
		rec := s.bySample[sample]
		fmt.Fprintf(w, "<li><a target='_blank' href='%s'>%s</a></li>\n", html.EscapeString(rec.HTMLPath), html.EscapeString(sample))
	}
}
