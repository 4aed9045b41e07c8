package data

import (
	"slices"
	"sort"
)

// A Match pairs a candidate artist with its similarity to one particular
// target artist. The score belongs to the pairing, not to the artist, so the
// same Artist can appear in matches against different targets.
type Match struct {
	Artist     *Artist
	Similarity float64
}

// Similarity is the fraction of the target's genes that the candidate also
// has, compared by name. The denominator is always the target's gene count,
// so a candidate only reaches 1 when its genes cover all of the target's. A
// target without genes scores 0 against everything.
func Similarity(target, candidate *Artist) float64 {
	targetNames := target.GeneNames()
	if len(targetNames) == 0 {
		return 0
	}

	has := make(map[string]struct{}, len(candidate.Genes))
	for _, gene := range candidate.Genes {
		has[gene.Name] = struct{}{}
	}

	shared := 0
	counted := make(map[string]struct{}, len(targetNames))
	for _, name := range targetNames {
		if _, done := counted[name]; done {
			continue
		}
		counted[name] = struct{}{}
		if _, ok := has[name]; ok {
			shared++
		}
	}

	return float64(shared) / float64(len(targetNames))
}

// Score computes every candidate's similarity to the target, in candidate
// order. Neither the target nor the candidates are modified.
func Score(target *Artist, candidates []*Artist) []Match {
	matches := make([]Match, len(candidates))
	for i, candidate := range candidates {
		matches[i] = Match{Artist: candidate, Similarity: Similarity(target, candidate)}
	}
	return matches
}

// RankDescending returns the matches ordered from most to least similar.
//
// Matches are stably sorted ascending and then reversed, so equal scores come
// out in the reverse of their input order.
func RankDescending(matches []Match) []Match {
	ranked := slices.Clone(matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity < ranked[j].Similarity
	})
	slices.Reverse(ranked)
	return ranked
}

// FilterMinSimilarity keeps the matches whose similarity is at least min.
func FilterMinSimilarity(matches []Match, min float64) []Match {
	var kept []Match
	for _, match := range matches {
		if match.Similarity >= min {
			kept = append(kept, match)
		}
	}
	return kept
}

// Artists unwraps matches back into their artists, keeping order.
func Artists(matches []Match) []*Artist {
	artists := make([]*Artist, len(matches))
	for i, match := range matches {
		artists[i] = match.Artist
	}
	return artists
}
