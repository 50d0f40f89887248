package coverage

import (
	"strings"
	"testing"
)

func TestParseRow(t *testing.T) {
	row, err := ParseRow(strings.Split("NC_045512.2\t12\t0.0315\t29903\t0.0315", "\t"))
	if err != nil {
		t.Fatal(err)
	}

	expected := Row{GenomeID: "NC_045512.2", Threshold: 12, FractionAtThreshold: 0.0315, GenomeLength: 29903, FractionBelowDiff: 0.0315}
	if row != expected {
		t.Fatalf("\nGot:      %+v\nExpected: %+v", row, expected)
	}
}

func TestParseRowRejects(t *testing.T) {
	for _, v := range []struct {
		Line    string
		Mention string
	}{
		{"NC_045512.2\t12\t0.0315\t29903", "expected 5 columns, got 4"},
		{"NC_045512.2\t12\t0.0315\t29903\t0.0315\textra", "expected 5 columns, got 6"},
		{"\t12\t0.0315\t29903\t0.0315", "empty genome"},
		{"NC_045512.2\ttwelve\t0.0315\t29903\t0.0315", "not an integer"},
		{"NC_045512.2\t12.5\t0.0315\t29903\t0.0315", "not an integer"},
		{"NC_045512.2\t-1\t0.0315\t29903\t0.0315", "negative"},
		{"NC_045512.2\t12\tabc\t29903\t0.0315", "fraction at threshold"},
		{"NC_045512.2\t12\t0.0315\t0\t0.0315", "not positive"},
		{"NC_045512.2\t12\t0.0315\t29903\tNaN", "not a finite number"},
		{"NC_045512.2\t12\t0.0315\t29903\t-0.5", "negative"},
	} {
		_, err := ParseRow(strings.Split(v.Line, "\t"))
		if err == nil {
			t.Errorf("%q: expected an error", v.Line)
			continue
		}
		if !strings.Contains(err.Error(), v.Mention) {
			t.Errorf("%q: error %q does not mention %q", v.Line, err, v.Mention)
		}
	}
}
