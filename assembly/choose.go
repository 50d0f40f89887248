package assembly

import (
	"encoding/csv"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
)

// Lower is better. Unknown values rank after every known one.
var (
	refseqCategoryRank = map[string]int{
		"reference genome":      0,
		"representative genome": 1,
	}

	assemblyLevelRank = map[string]int{
		"Complete Genome": 0,
		"Chromosome":      1,
		"Scaffold":        2,
		"Contig":          3,
	}

	genomeRepRank = map[string]int{
		"Full":    0,
		"Partial": 1,
	}
)

func rank(m map[string]int, key string) int {
	if v, exists := m[key]; exists {
		return v
	}

	return len(m)
}

// better reports whether a should be preferred over b as a reference.
func better(a, b Assembly) bool {
	if x, y := rank(refseqCategoryRank, a.RefseqCategory), rank(refseqCategoryRank, b.RefseqCategory); x != y {
		return x < y
	}

	if x, y := rank(assemblyLevelRank, a.AssemblyLevel), rank(assemblyLevelRank, b.AssemblyLevel); x != y {
		return x < y
	}

	return rank(genomeRepRank, a.GenomeRep) < rank(genomeRepRank, b.GenomeRep)
}

// Choice is one line of chosen_assemblies_data.tsv.
type Choice struct {
	ScientificName string `csv:"Scientific_name"`
	SpeciesTaxID   string `csv:"Species_Taxonomic_ID"`
	Accession      string `csv:"Assembly_accession_chosen"`
	AssemblyLevel  string `csv:"Assembly_level"`
	RefseqCategory string `csv:"Refseq_category"`
	Representation string `csv:"Representation"`
	URL            string `csv:"Assembly_url"`
}

// Choose picks one assembly per species in species. Preference goes to the
// NCBI reference genome, then representative genomes, then the most
// contiguous assembly level, then full genome representation. Ties go to the
// assembly listed first. Species without any assembly are omitted.
func Choose(species map[string]struct{}, assemblies []Assembly) []Choice {
	best := make(map[string]Assembly)
	for _, a := range assemblies {
		if _, wanted := species[a.SpeciesTaxID]; !wanted {
			continue
		}

		if current, exists := best[a.SpeciesTaxID]; !exists || better(a, current) {
			best[a.SpeciesTaxID] = a
		}
	}

	out := make([]Choice, 0, len(best))
	for _, a := range best {
		out = append(out, Choice{
			ScientificName: a.OrganismName,
			SpeciesTaxID:   a.SpeciesTaxID,
			Accession:      a.Accession,
			AssemblyLevel:  a.AssemblyLevel,
			RefseqCategory: a.RefseqCategory,
			Representation: a.GenomeRep,
			URL:            a.FTPPath,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ScientificName != out[j].ScientificName {
			return out[i].ScientificName < out[j].ScientificName
		}
		return out[i].SpeciesTaxID < out[j].SpeciesTaxID
	})

	return out
}

// WriteChoices writes choices as a tab-delimited table with a header row.
func WriteChoices(w io.Writer, choices []Choice) error {
	tw := csv.NewWriter(w)
	tw.Comma = '\t'

	return gocsv.MarshalCSV(choices, gocsv.NewSafeCSVWriter(tw))
}
