package compileinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	c := CompileInfo{
		Package:    "github.com/carbocation/pikavirus/cmd/graphscoverage",
		Version:    "(devel)",
		GoVersion:  "go1.18",
		Commit:     "abc123",
		CommitTime: "2022-06-01T00:00:00Z",
		Modified:   true,
	}

	s := c.String()
	for _, want := range []string{"graphscoverage", "go1.18", "abc123", "modified"} {
		if !strings.Contains(s, want) {
			t.Errorf("%q does not mention %q", s, want)
		}
	}

	if s := (CompileInfo{}).String(); !strings.Contains(s, "No build information") {
		t.Errorf("unexpected empty description %q", s)
	}
}
