package assembly

import (
	"context"
	"fmt"
	"io"
)

// Opener opens an input path, which may be local or remote.
type Opener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// SelectFromFiles reads a Kraken2 report and an NCBI assembly summary and
// chooses a reference assembly for every species in the report.
func SelectFromFiles(ctx context.Context, krakenReport, assemblySummary string, opener Opener) ([]Choice, error) {
	species, err := readWith(ctx, krakenReport, opener, ReadKrakenSpecies)
	if err != nil {
		return nil, err
	}

	assemblies, err := readWith(ctx, assemblySummary, opener, ReadAssemblySummary)
	if err != nil {
		return nil, err
	}

	return Choose(species, assemblies), nil
}

func readWith[T any](ctx context.Context, path string, opener Opener, parse func(io.Reader) (T, error)) (T, error) {
	var zero T

	f, err := opener.Open(ctx, path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	out, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}
