package coverage

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of failure. Every error returned by this package that stems from the
// input or output files satisfies errors.Is against exactly one of them.
var (
	ErrMissingFile     = errors.New("missing input file")
	ErrMalformedInput  = errors.New("malformed input")
	ErrDegenerateInput = errors.New("degenerate input")
	ErrOutputWrite     = errors.New("cannot write output")
)

// Error locates a failure: the file and line for input problems, the genome
// for aggregation problems, the path for output problems.
type Error struct {
	Kind   error
	Path   string
	Line   int
	Genome string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())

	if e.Path != "" {
		fmt.Fprintf(&b, ": %s", e.Path)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
	}

	if e.Genome != "" {
		fmt.Fprintf(&b, ": genome %s", e.Genome)
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }
