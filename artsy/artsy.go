// Package artsy reads artists and genes from the artsy.net API.
package artsy

import (
	"context"
	"fmt"
	"strconv"

	"github.com/amonks/curatorator/data"
	"github.com/amonks/curatorator/hal"
)

const (
	// DefaultRoot is the API's root resource.
	DefaultRoot = "https://api.artsy.net/api"

	// MediaType selects version 2 of the API.
	MediaType = "application/vnd.artsy-v2+json"

	// Contemporary asks for artists working in the same period.
	Contemporary = "contemporary"
)

// Follower follows one named relation from the API root.
type Follower interface {
	Follow(ctx context.Context, rel string, params map[string]string) (*hal.Resource, error)
}

// Client maps API resources into data types.
type Client struct {
	api Follower
}

// New creates a client on top of the given relation follower.
func New(api Follower) *Client {
	return &Client{api: api}
}

// Artist fetches one artist by ID or slug. Its genes are not fetched.
func (c *Client) Artist(ctx context.Context, id string) (*data.Artist, error) {
	res, err := c.api.Follow(ctx, "artist", map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("error fetching artist '%s': %w", id, err)
	}

	var result artistResult
	if err := res.Decode(&result); err != nil {
		return nil, fmt.Errorf("artist decode error for '%s': %w", id, err)
	}
	return result.artist(), nil
}

// Genes fetches an artist's genes in a single page of the given size. Genes
// past the first page are not fetched.
func (c *Client) Genes(ctx context.Context, artistID string, size int) ([]data.Gene, error) {
	res, err := c.api.Follow(ctx, "genes", map[string]string{
		"artist_id": artistID,
		"size":      strconv.Itoa(size),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching genes for artist '%s': %w", artistID, err)
	}

	var results []geneResult
	if err := res.DecodeEmbedded("genes", &results); err != nil {
		return nil, fmt.Errorf("genes decode error for artist '%s': %w", artistID, err)
	}

	genes := make([]data.Gene, len(results))
	for i, gene := range results {
		genes[i] = data.Gene{ID: gene.ID, Name: gene.Name}
	}
	return genes, nil
}

// SimilarArtists fetches up to size artists the catalog considers similar
// to the given one. similarityType is usually Contemporary. The returned
// artists have no genes yet.
func (c *Client) SimilarArtists(ctx context.Context, artistID, similarityType string, size int) ([]*data.Artist, error) {
	res, err := c.api.Follow(ctx, "artists", map[string]string{
		"similar_to_artist_id": artistID,
		"similarity_type":      similarityType,
		"size":                 strconv.Itoa(size),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching artists similar to '%s': %w", artistID, err)
	}

	var results []artistResult
	if err := res.DecodeEmbedded("artists", &results); err != nil {
		return nil, fmt.Errorf("similar artists decode error for '%s': %w", artistID, err)
	}

	artists := make([]*data.Artist, len(results))
	for i, result := range results {
		artists[i] = result.artist()
	}
	return artists, nil
}

type artistResult struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Birthday    string `json:"birthday"`
	Deathday    string `json:"deathday"`
	Hometown    string `json:"hometown"`
	Location    string `json:"location"`
	Nationality string `json:"nationality"`

	Links struct {
		Permalink hal.Link `json:"permalink"`
		Thumbnail hal.Link `json:"thumbnail"`
	} `json:"_links"`
}

func (r artistResult) artist() *data.Artist {
	return &data.Artist{
		ID:           r.ID,
		Slug:         r.Slug,
		Name:         r.Name,
		Birthday:     r.Birthday,
		Deathday:     r.Deathday,
		Hometown:     r.Hometown,
		Location:     r.Location,
		Nationality:  r.Nationality,
		PermalinkURL: r.Links.Permalink.Href,
		ThumbnailURL: r.Links.Thumbnail.Href,
	}
}

type geneResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
