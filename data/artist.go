package data

// Artists are fetched from the art-catalog API. Everything but ID and Name is
// optional and left empty when the catalog doesn't know it.
type Artist struct {
	ID   string
	Slug string
	Name string

	// like "1928", or sometimes a full date
	Birthday string
	Deathday string

	Hometown    string
	Location    string
	Nationality string

	PermalinkURL string
	ThumbnailURL string

	// Genes is nil until the artist has been enriched. Duplicate names are
	// kept as the catalog returned them.
	Genes []Gene
}

// HasGenes reports whether the artist's genes have been fetched.
func (a *Artist) HasGenes() bool { return a.Genes != nil }

// GeneNames returns the names of the artist's genes, in catalog order.
func (a *Artist) GeneNames() []string {
	names := make([]string, len(a.Genes))
	for i, gene := range a.Genes {
		names[i] = gene.Name
	}
	return names
}
