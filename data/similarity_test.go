package data_test

import (
	"math"
	"testing"

	"github.com/amonks/curatorator/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func artist(id string, genes ...string) *data.Artist {
	a := &data.Artist{ID: id, Name: id, Genes: []data.Gene{}}
	for _, name := range genes {
		a.Genes = append(a.Genes, data.Gene{ID: "gene-" + name, Name: name})
	}
	return a
}

func TestSimilarity(t *testing.T) {
	target := artist("warhol", "Pop Art", "Celebrity Culture")
	assert.Equal(t, 0.5, data.Similarity(target, artist("a", "Pop Art")))
	assert.Equal(t, 1.0, data.Similarity(target, artist("b", "Pop Art", "Celebrity Culture", "Collage")))
	assert.Equal(t, 0.0, data.Similarity(target, artist("c")))
	assert.Equal(t, 0.0, data.Similarity(target, artist("d", "Minimalism")))
}

func TestSimilarityEmptyTarget(t *testing.T) {
	empty := artist("empty")
	got := data.Similarity(empty, artist("a", "Pop Art"))
	assert.Equal(t, 0.0, got)
	assert.False(t, math.IsNaN(got))

	got = data.Similarity(&data.Artist{ID: "unenriched"}, artist("a", "Pop Art"))
	assert.Equal(t, 0.0, got)
}

func TestSimilarityComparesNamesNotIDs(t *testing.T) {
	target := artist("warhol", "Pop Art")
	candidate := &data.Artist{ID: "a", Genes: []data.Gene{{ID: "some-other-id", Name: "Pop Art"}}}
	assert.Equal(t, 1.0, data.Similarity(target, candidate))
}

func TestSimilarityDenominatorIsTarget(t *testing.T) {
	target := artist("warhol", "Pop Art", "Celebrity Culture", "Repetition", "Consumerism")
	candidate := artist("a", "Pop Art")
	assert.Equal(t, 0.25, data.Similarity(target, candidate))
	assert.Equal(t, 1.0, data.Similarity(candidate, target))
}

func TestSimilarityDuplicateTargetGenes(t *testing.T) {
	target := artist("warhol", "Pop Art", "Pop Art")
	assert.Equal(t, 0.5, data.Similarity(target, artist("a", "Pop Art", "Pop Art")))
}

func TestScoreDoesNotModifyArtists(t *testing.T) {
	target := artist("warhol", "Pop Art")
	candidates := []*data.Artist{artist("a", "Pop Art"), artist("b")}

	matches := data.Score(target, candidates)
	require.Len(t, matches, 2)
	assert.Same(t, candidates[0], matches[0].Artist)
	assert.Equal(t, 1.0, matches[0].Similarity)
	assert.Equal(t, 0.0, matches[1].Similarity)
	assert.Equal(t, []string{"Pop Art"}, candidates[0].GeneNames())
}

func TestRankDescendingIsNonIncreasing(t *testing.T) {
	target := artist("t", "a", "b", "c", "d")
	candidates := []*data.Artist{
		artist("1", "a"),
		artist("2", "a", "b", "c"),
		artist("3"),
		artist("4", "a", "b", "c", "d"),
		artist("5", "b", "c"),
		artist("6", "d"),
	}
	ranked := data.RankDescending(data.Score(target, candidates))
	require.Len(t, ranked, len(candidates))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Similarity, ranked[i].Similarity)
	}
}

func TestRankDescendingReversesTies(t *testing.T) {
	matches := []data.Match{
		{Artist: artist("first"), Similarity: 0.5},
		{Artist: artist("second"), Similarity: 0.5},
		{Artist: artist("best"), Similarity: 1},
		{Artist: artist("third"), Similarity: 0.5},
	}
	ranked := data.RankDescending(matches)

	var ids []string
	for _, m := range ranked {
		ids = append(ids, m.Artist.ID)
	}
	assert.Equal(t, []string{"best", "third", "second", "first"}, ids)
	assert.Equal(t, "first", matches[0].Artist.ID, "input is left alone")
}

func TestFilterMinSimilarity(t *testing.T) {
	matches := []data.Match{
		{Artist: artist("a"), Similarity: 0.05},
		{Artist: artist("b"), Similarity: 0.1},
		{Artist: artist("c"), Similarity: 0.75},
		{Artist: artist("d"), Similarity: 0},
	}

	kept := data.FilterMinSimilarity(matches, 0.1)
	require.Len(t, kept, 2)
	assert.Equal(t, "b", kept[0].Artist.ID)
	assert.Equal(t, "c", kept[1].Artist.ID)

	assert.Equal(t, kept, data.FilterMinSimilarity(kept, 0.1))
	assert.Empty(t, data.FilterMinSimilarity(matches, 0.9))
}

func TestPopArtScenario(t *testing.T) {
	target := artist("warhol", "Pop Art", "Celebrity Culture")
	one := artist("one", "Pop Art")
	two := artist("two", "Pop Art", "Celebrity Culture")
	three := artist("three")

	ranked := data.RankDescending(data.Score(target, []*data.Artist{one, two, three}))
	assert.Equal(t, []*data.Artist{two, one, three}, data.Artists(ranked))
	assert.Equal(t, []float64{1, 0.5, 0}, []float64{ranked[0].Similarity, ranked[1].Similarity, ranked[2].Similarity})

	featured := data.FilterMinSimilarity(ranked, 0.1)
	assert.Equal(t, []*data.Artist{two, one}, data.Artists(featured))
}

func TestGeneNames(t *testing.T) {
	a := artist("a", "Pop Art", "Collage", "Pop Art")
	assert.Equal(t, []string{"Pop Art", "Collage", "Pop Art"}, a.GeneNames())
	assert.True(t, a.HasGenes())
	assert.False(t, (&data.Artist{}).HasGenes())
}
