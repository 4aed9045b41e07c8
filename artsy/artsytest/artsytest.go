// Package artsytest runs a fake artsy.net API for tests.
package artsytest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/amonks/curatorator/hal"
	"github.com/goccy/go-json"
)

// Artist is an artist known to the fake API.
type Artist struct {
	ID          string
	Name        string
	Birthday    string
	Location    string
	Nationality string
	Thumbnail   string
	Genes       []string
}

// Server serves the artist, artists, and genes relations from memory.
type Server struct {
	*httptest.Server

	// Token, if set, must be sent with every request.
	Token string

	mu        sync.Mutex
	artists   map[string]Artist
	similar   map[string][]string
	failGenes map[string]bool
	hits      map[string]int
}

// New starts a server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		artists:   map[string]Artist{},
		similar:   map[string][]string{},
		failGenes: map[string]bool{},
		hits:      map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api", s.root)
	mux.HandleFunc("GET /api/artists/{id}", s.artist)
	mux.HandleFunc("GET /api/artists", s.similarArtists)
	mux.HandleFunc("GET /api/genes", s.genes)
	s.Server = httptest.NewServer(s.authorize(mux))
	t.Cleanup(s.Close)

	return s
}

// Root is the URL of the API root.
func (s *Server) Root() string { return s.URL + "/api" }

// AddArtist makes an artist fetchable.
func (s *Server) AddArtist(artists ...Artist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range artists {
		s.artists[a.ID] = a
	}
}

// SetSimilar sets the artists returned as similar to id, in order.
func (s *Server) SetSimilar(id string, similar ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.similar[id] = similar
}

// FailGenes makes gene lookups for the given artist return a 500.
func (s *Server) FailGenes(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failGenes[id] = true
}

// Hits returns how many requests were made to the given path.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		token := s.Token
		s.mu.Unlock()

		if token != "" && r.Header.Get(hal.TokenHeader) != token {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"type":"auth_error","message":"The access token is invalid or has expired."}`)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	write(w, map[string]any{
		"_links": map[string]any{
			"self":    link("/api", false),
			"artist":  link("/api/artists/{id}", true),
			"artists": link("/api/artists{?page,size,similar_to_artist_id,similarity_type}", true),
			"genes":   link("/api/genes{?page,size,artist_id}", true),
		},
	})
}

func (s *Server) artist(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	a, ok := s.artists[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"type":"error","message":"Artist Not Found"}`)
		return
	}
	write(w, a.resource())
}

func (s *Server) similarArtists(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	size := sizeParam(query.Get("size"))

	s.mu.Lock()
	var embedded []any
	for _, id := range s.similar[query.Get("similar_to_artist_id")] {
		if len(embedded) == size {
			break
		}
		embedded = append(embedded, s.artists[id].resource())
	}
	s.mu.Unlock()

	if embedded == nil {
		embedded = []any{}
	}
	write(w, map[string]any{"_embedded": map[string]any{"artists": embedded}})
}

func (s *Server) genes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	id := query.Get("artist_id")
	size := sizeParam(query.Get("size"))

	s.mu.Lock()
	fail := s.failGenes[id]
	names := s.artists[id].Genes
	s.mu.Unlock()

	if fail {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	genes := []any{}
	for i, name := range names {
		if i == size {
			break
		}
		genes = append(genes, map[string]any{"id": fmt.Sprintf("gene-%d", i), "name": name})
	}
	write(w, map[string]any{"_embedded": map[string]any{"genes": genes}})
}

func (a Artist) resource() map[string]any {
	links := map[string]any{
		"self":      link("/api/artists/"+a.ID, false),
		"permalink": link("https://www.artsy.net/artist/"+a.ID, false),
	}
	if a.Thumbnail != "" {
		links["thumbnail"] = link(a.Thumbnail, false)
	}
	res := map[string]any{
		"id":     a.ID,
		"slug":   a.ID,
		"name":   a.Name,
		"_links": links,
	}
	if a.Birthday != "" {
		res["birthday"] = a.Birthday
	}
	if a.Location != "" {
		res["location"] = a.Location
	}
	if a.Nationality != "" {
		res["nationality"] = a.Nationality
	}
	return res
}

func link(href string, templated bool) map[string]any {
	if templated {
		return map[string]any{"href": href, "templated": true}
	}
	return map[string]any{"href": href}
}

func sizeParam(s string) int {
	size, err := strconv.Atoi(s)
	if err != nil || size <= 0 {
		return 5
	}
	return size
}

func write(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/vnd.artsy-v2+json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
