package report

import (
	"slices"
	"sort"

	"github.com/amonks/curatorator/data"
)

// A GeneCount is how many of a set of artists carry a gene.
type GeneCount struct {
	Gene  string
	Count int
}

// GeneFrequency counts every gene name across the given artists. An artist
// listing a gene twice counts twice.
func GeneFrequency(artists []*data.Artist) map[string]int {
	counts := map[string]int{}
	for _, artist := range artists {
		for _, gene := range artist.Genes {
			counts[gene.Name]++
		}
	}
	return counts
}

// TopGenes returns the genes carried at least min times, most frequent
// first. Genes are stably sorted by ascending count and then reversed, so
// among equal counts the gene seen last comes first.
func TopGenes(artists []*data.Artist, min int) []GeneCount {
	var ordered []GeneCount
	index := map[string]int{}
	for _, artist := range artists {
		for _, gene := range artist.Genes {
			i, ok := index[gene.Name]
			if !ok {
				i = len(ordered)
				index[gene.Name] = i
				ordered = append(ordered, GeneCount{Gene: gene.Name})
			}
			ordered[i].Count++
		}
	}

	var top []GeneCount
	for _, gc := range ordered {
		if gc.Count >= min {
			top = append(top, gc)
		}
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count < top[j].Count })
	slices.Reverse(top)
	return top
}
