package coverage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Opener opens an input path, which may be local or remote.
// pikavirus.Opener is the implementation used by the commands.
type Opener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// ReadFiles reads every coverage table in paths and concatenates their rows in
// file order.
func ReadFiles(ctx context.Context, paths []string, opener Opener) ([]Row, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no coverage tables were provided")
	}

	var out []Row
	for _, path := range paths {
		rows, err := readFile(ctx, path, opener)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}

	return out, nil
}

func readFile(ctx context.Context, path string, opener Opener) ([]Row, error) {
	f, err := opener.Open(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &Error{Kind: ErrMissingFile, Path: path, Err: err}
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadRows(f, path)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, &Error{Kind: ErrMalformedInput, Path: path, Err: fmt.Errorf("no coverage rows")}
	}

	return rows, nil
}

// ReadRows parses one tab-delimited coverage table. Name is only used to
// describe errors. Blank lines are ignored.
func ReadRows(r io.Reader, name string) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var out []Row
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &Error{Kind: ErrMalformedInput, Path: name, Line: parseErr.Line, Err: parseErr.Err}
		} else if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		row, err := ParseRow(fields)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, &Error{Kind: ErrMalformedInput, Path: name, Line: line, Err: err}
		}

		out = append(out, row)
	}

	return out, nil
}
