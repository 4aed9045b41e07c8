package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/amonks/curatorator/artsy/artsytest"
	"github.com/amonks/curatorator/config"
	"github.com/amonks/curatorator/curate"
	"github.com/amonks/curatorator/hal"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (*artsytest.Server, *config.Config) {
	t.Helper()
	server := artsytest.New(t)
	server.Token = "xapp-token"
	server.AddArtist(
		artsytest.Artist{
			ID:          AndyWarhol,
			Name:        "Andy Warhol",
			Birthday:    "1928",
			Nationality: "American",
			Thumbnail:   "https://example.com/warhol.jpg",
			Genes:       []string{"Pop Art", "Celebrity Culture"},
		},
		artsytest.Artist{ID: "one", Name: "Roy Lichtenstein", Nationality: "American", Genes: []string{"Pop Art"}},
		artsytest.Artist{ID: "two", Name: "Richard Hamilton", Genes: []string{"Pop Art", "Celebrity Culture"}},
		artsytest.Artist{ID: "three", Name: "Agnes Martin"},
	)
	server.SetSimilar(AndyWarhol, "one", "two", "three")

	cfg := config.Default()
	cfg.APIRoot = server.Root()
	cfg.Token = "xapp-token"
	cfg.MinThemeCount = 2
	return server, cfg
}

func TestRun(t *testing.T) {
	_, cfg := testServer(t)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, zerolog.Nop(), &out))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out.String()))
	require.NoError(t, err)

	assert.Equal(t, "Andy Warhol", doc.Find("#target h1 a").Text())
	assert.Equal(t, "Pop Art (3), Celebrity Culture (2).", doc.Find("#themes").Text())

	var featured []string
	doc.Find(".artist h3").Each(func(i int, sel *goquery.Selection) {
		featured = append(featured, sel.Text())
	})
	assert.Equal(t, []string{"Richard Hamilton (1.00)", "Roy Lichtenstein (0.50)"}, featured)
}

func TestRunBadTokenWritesNothing(t *testing.T) {
	_, cfg := testServer(t)
	cfg.Token = ""

	var out bytes.Buffer
	err := run(context.Background(), cfg, zerolog.Nop(), &out)
	require.Error(t, err)

	var fetchErr *hal.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 401, fetchErr.StatusCode)
	assert.Zero(t, out.Len())
}

func TestRunCandidateFailureWritesNothing(t *testing.T) {
	server, cfg := testServer(t)
	server.FailGenes("three")

	var out bytes.Buffer
	err := run(context.Background(), cfg, zerolog.Nop(), &out)

	var enrichErr *curate.EnrichmentError
	require.True(t, errors.As(err, &enrichErr))
	assert.Equal(t, "three", enrichErr.ArtistID)
	assert.Zero(t, out.Len())
}
