// Package hal follows named relations through a HAL+JSON API.
//
// A Client never builds paths itself: every request starts at the API root,
// looks up a relation in the root's _links, expands the relation's URI
// template with the caller's parameters, and fetches the result.
package hal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/amonks/curatorator/request"
	"github.com/rs/zerolog"
	"github.com/yosida95/uritemplate/v3"
)

const (
	// TokenHeader carries the static API token.
	TokenHeader = "X-Xapp-Token"

	// MediaType is what HAL APIs answer with when no version is negotiated.
	MediaType = "application/hal+json"
)

// Client follows relations from a fixed API root. It holds no mutable
// state, so it is safe for concurrent use.
type Client struct {
	root       string
	header     http.Header
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.header.Set(key, value) }
}

// WithToken sets the static API token header.
func WithToken(token string) Option {
	return WithHeader(TokenHeader, token)
}

// WithAccept sets the content-negotiation header, which is how the API
// selects its version.
func WithAccept(mediaType string) Option {
	return WithHeader("Accept", mediaType)
}

// WithLogger sets the logger used for per-request debug logs.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client rooted at the given URL.
func New(root string, opts ...Option) *Client {
	c := &Client{
		root:       root,
		header:     http.Header{"Accept": []string{MediaType}},
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root fetches the API's root resource.
func (c *Client) Root(ctx context.Context) (*Resource, error) {
	return c.get(ctx, "", c.root)
}

// Follow fetches the root, then follows the relation rel from it,
// substituting params into the relation's URI template. Parameters the
// template does not name are ignored.
func (c *Client) Follow(ctx context.Context, rel string, params map[string]string) (*Resource, error) {
	root, err := c.Root(ctx)
	if err != nil {
		return nil, err
	}

	link, ok := root.Link(rel)
	if !ok {
		return nil, &FetchError{Rel: rel, URL: c.root, Err: ErrRelationNotFound}
	}

	target, err := c.resolve(link, params)
	if err != nil {
		return nil, &FetchError{Rel: rel, URL: link.Href, Err: err}
	}

	return c.get(ctx, rel, target)
}

func (c *Client) resolve(link Link, params map[string]string) (string, error) {
	href := link.Href
	if link.Templated {
		tmpl, err := uritemplate.New(href)
		if err != nil {
			return "", fmt.Errorf("error parsing uri template '%s': %w", href, err)
		}
		vals := uritemplate.Values{}
		for k, v := range params {
			vals.Set(k, uritemplate.String(v))
		}
		if href, err = tmpl.Expand(vals); err != nil {
			return "", fmt.Errorf("error expanding uri template '%s': %w", link.Href, err)
		}
	}

	base, err := url.Parse(c.root)
	if err != nil {
		return "", fmt.Errorf("error parsing api root '%s': %w", c.root, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("error parsing href '%s': %w", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func (c *Client) get(ctx context.Context, rel, target string) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{Rel: rel, URL: target, Err: fmt.Errorf("request error: %w", err)}
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		return nil, &FetchError{Rel: rel, URL: target, Err: fmt.Errorf("request error (latency=%v): %w", latency, err)}
	}
	defer resp.Body.Close()

	if err := request.Error(resp); err != nil {
		return nil, &FetchError{Rel: rel, URL: target, StatusCode: resp.StatusCode, Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Rel: rel, URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("error reading body: %w", err)}
	}
	res, err := Parse(body)
	if err != nil {
		return nil, &FetchError{Rel: rel, URL: target, StatusCode: resp.StatusCode, Err: err}
	}

	c.log.Debug().
		Str("rel", rel).
		Str("url", target).
		Dur("latency", latency).
		Msg("fetched")

	return res, nil
}
