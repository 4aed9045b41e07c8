// Package report renders a curated show as a single HTML page: the target
// artist, the themes its similar artists share, and a card per featured
// artist.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/amonks/curatorator/data"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DefaultMinSimilarity is the lowest similarity an artist can have and
	// still be featured.
	DefaultMinSimilarity = 0.1

	// DefaultMinThemeCount is how many artists must share a gene for it
	// to be a theme of the show.
	DefaultMinThemeCount = 10

	// Placeholder is a 1x1 PNG shown for artists without a thumbnail.
	Placeholder = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAIAAACQd1PeAAAACXBIWXMAAAsTAAALEwEAmpwYAAAAB3RJTUUH3wweFzUXYgE7cwAAABl0RVh0Q29tbWVudABDcmVhdGVkIHdpdGggR0lNUFeBDhcAAAAMSURBVAjXY3j27BkABWgCs9Pm25QAAAAASUVORK5CYII="
)

// ieShims loads HTML5 support into old versions of Internet Explorer. It is
// passed through as HTML because the template engine strips comments.
const ieShims = template.HTML(`<!--[if lt IE 9]><script src="https://oss.maxcdn.com/html5shiv/3.7.2/html5shiv.min.js"></script><script src="https://oss.maxcdn.com/respond/1.4.2/respond.min.js"></script><![endif]-->`)

//go:embed report.html.tmpl
var pageTemplate string

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"join":        strings.Join,
	"placeholder": func() template.URL { return template.URL(Placeholder) },
}).Parse(pageTemplate))

var humanPrinter = message.NewPrinter(language.English)

// A Page is everything needed to render a report. Matches should already be
// ranked.
type Page struct {
	Target  *data.Artist
	Matches []data.Match

	// Zero values fall back to DefaultMinSimilarity and
	// DefaultMinThemeCount.
	MinSimilarity float64
	MinThemeCount int
}

type view struct {
	Title         string
	IEShims       template.HTML
	Target        card
	Themes        []string
	MinThemeCount int
	Featured      []card
}

type card struct {
	Name        string
	Permalink   string
	Thumbnail   string
	Placeholder bool
	Similarity  string
	Bio         string
	Genes       []string
}

// Render writes the page as a complete HTML document. Nothing is written
// unless the whole document renders.
func Render(w io.Writer, page Page) error {
	if page.Target == nil {
		return fmt.Errorf("report has no target artist")
	}
	if page.MinSimilarity == 0 {
		page.MinSimilarity = DefaultMinSimilarity
	}
	if page.MinThemeCount == 0 {
		page.MinThemeCount = DefaultMinThemeCount
	}

	v := view{
		Title:         "Curatorator",
		IEShims:       ieShims,
		Target:        newCard(page.Target),
		Themes:        Themes(page.Target, page.Matches, page.MinThemeCount),
		MinThemeCount: page.MinThemeCount,
	}
	for _, match := range data.FilterMinSimilarity(page.Matches, page.MinSimilarity) {
		c := newCard(match.Artist)
		c.Similarity = fmt.Sprintf("%.2f", match.Similarity)
		v.Featured = append(v.Featured, c)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return fmt.Errorf("error rendering report for '%s': %w", page.Target.Name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}

// Themes describes the genes shared by at least min of the matched artists
// and the target, like "Pop Art (12)".
func Themes(target *data.Artist, matches []data.Match, min int) []string {
	artists := append(data.Artists(matches), target)
	var themes []string
	for _, gc := range TopGenes(artists, min) {
		themes = append(themes, humanPrinter.Sprintf("%s (%d)", gc.Gene, gc.Count))
	}
	return themes
}

// Bio is the parenthesized line under an artist's name: nationality and
// birthday, whichever are known, or "" if neither is.
func Bio(artist *data.Artist) string {
	switch {
	case artist.Nationality != "" && artist.Birthday != "":
		return artist.Nationality + ", " + artist.Birthday
	case artist.Nationality != "":
		return artist.Nationality
	case artist.Birthday != "":
		return artist.Birthday
	default:
		return ""
	}
}

func newCard(artist *data.Artist) card {
	return card{
		Name:        artist.Name,
		Permalink:   artist.PermalinkURL,
		Thumbnail:   artist.ThumbnailURL,
		Placeholder: artist.ThumbnailURL == "",
		Bio:         Bio(artist),
		Genes:       artist.GeneNames(),
	}
}
