// Package curate finds the artists a catalog considers similar to a target
// artist and ranks them by how many of the target's genes they share.
package curate

import (
	"context"
	"fmt"
	"time"

	"github.com/amonks/curatorator/data"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultGenePageSize is large enough that no artist's genes need a
	// second page.
	DefaultGenePageSize = 100

	// DefaultSimilarCount caps how many similar artists are fetched, and
	// so how many gene lookups run at once.
	DefaultSimilarCount = 100

	// DefaultSimilarityType asks for artists from the same period.
	DefaultSimilarityType = "contemporary"
)

// Catalog is the subset of the artsy client a Curator needs.
type Catalog interface {
	Artist(ctx context.Context, id string) (*data.Artist, error)
	Genes(ctx context.Context, artistID string, size int) ([]data.Gene, error)
	SimilarArtists(ctx context.Context, artistID, similarityType string, size int) ([]*data.Artist, error)
}

// Curator enriches artists with genes and discovers similar artists.
type Curator struct {
	catalog        Catalog
	genePageSize   int
	similarCount   int
	similarityType string
	log            zerolog.Logger
}

// Option configures a Curator.
type Option func(*Curator)

// WithGenePageSize sets how many genes are requested per artist.
func WithGenePageSize(size int) Option {
	return func(c *Curator) { c.genePageSize = size }
}

// WithSimilarCount sets how many similar artists are requested.
func WithSimilarCount(count int) Option {
	return func(c *Curator) { c.similarCount = count }
}

// WithSimilarityType sets the kind of similarity asked of the catalog.
func WithSimilarityType(similarityType string) Option {
	return func(c *Curator) { c.similarityType = similarityType }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Curator) { c.log = log }
}

// New creates a Curator reading from the given catalog.
func New(catalog Catalog, opts ...Option) *Curator {
	c := &Curator{
		catalog:        catalog,
		genePageSize:   DefaultGenePageSize,
		similarCount:   DefaultSimilarCount,
		similarityType: DefaultSimilarityType,
		log:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnrichArtist fetches an artist along with its genes.
func (c *Curator) EnrichArtist(ctx context.Context, id string) (*data.Artist, error) {
	artist, err := c.catalog.Artist(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.fetchGenes(ctx, artist); err != nil {
		return nil, err
	}
	c.log.Info().
		Str("artist", artist.Name).
		Int("genes", len(artist.Genes)).
		Msg("fetched artist")
	return artist, nil
}

// EnsureGenes fetches the artist's genes unless it already has them.
func (c *Curator) EnsureGenes(ctx context.Context, artist *data.Artist) error {
	if artist.HasGenes() {
		return nil
	}
	return c.fetchGenes(ctx, artist)
}

// DiscoverSimilar fetches the artists similar to target, fetches every
// candidate's genes in parallel, and returns the candidates ranked by
// similarity to target, most similar first.
//
// If any single gene lookup fails, DiscoverSimilar fails: there are no
// partial results.
func (c *Curator) DiscoverSimilar(ctx context.Context, target *data.Artist) ([]data.Match, error) {
	if err := c.EnsureGenes(ctx, target); err != nil {
		return nil, err
	}

	candidates, err := c.catalog.SimilarArtists(ctx, target.ID, c.similarityType, c.similarCount)
	if err != nil {
		return nil, err
	}
	c.log.Info().
		Str("artist", target.Name).
		Int("count", len(candidates)).
		Msg("fetched similar artists")

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for _, candidate := range candidates {
		g.Go(func() error {
			return c.fetchGenes(gctx, candidate)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error enriching %d similar artists: %w", len(candidates), err)
	}
	c.log.Info().
		Int("count", len(candidates)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched genes for similar artists")

	return data.RankDescending(data.Score(target, candidates)), nil
}

// fetchGenes sets artist.Genes. Only this artist is written, so it is safe
// to run for many artists at once.
func (c *Curator) fetchGenes(ctx context.Context, artist *data.Artist) error {
	genes, err := c.catalog.Genes(ctx, artist.ID, c.genePageSize)
	if err != nil {
		return &EnrichmentError{ArtistID: artist.ID, Err: err}
	}
	if genes == nil {
		genes = []data.Gene{}
	}
	artist.Genes = genes
	c.log.Debug().
		Str("artist", artist.ID).
		Int("genes", len(genes)).
		Msg("fetched genes")
	return nil
}
