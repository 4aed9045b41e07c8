package data

// A Gene is one of the catalog's curatorial tags, like "Pop Art" or
// "Celebrity Culture". Genes are compared by name; IDs are kept only for
// reference.
type Gene struct {
	// like "4d90d190dcdd5f44a5000018"
	ID string

	// like "Pop Art"
	Name string
}
