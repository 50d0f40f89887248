package pikavirus

import (
	"strings"
	"testing"
)

func TestDetermineDelimiter(t *testing.T) {
	for _, v := range []struct {
		Name     string
		Input    string
		Expected rune
	}{
		{
			"tab with underscores in ids",
			"NC_045512.2\t1\t0.5\t29903\t0.5\nNC_045512.2\t2\t0.5\t29903\t0.5\n",
			'\t',
		},
		{
			"fastqc records",
			"s1,pre,s1_R1.fastq.gz,35-151,1000,45,results/raw_fastqc/s1_R1.html\n" +
				"s1,post,s1_R1.trim.fastq.gz,35-151,900,44,results/raw_fastqc/s1_R1.trim.html\n",
			',',
		},
		{
			"nothing recognizable",
			"abc\ndef\n",
			',',
		},
	} {
		if got := DetermineDelimiter(strings.NewReader(v.Input)); got != v.Expected {
			t.Errorf("%s: got %q, expected %q", v.Name, got, v.Expected)
		}
	}
}
