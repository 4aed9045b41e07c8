package curate

import "fmt"

// EnrichmentError means an artist's genes could not be fetched. Its message
// stays generic; the underlying fetch error is still reachable with
// errors.As/errors.Is.
type EnrichmentError struct {
	ArtistID string
	Err      error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("could not get genes for artist '%s'", e.ArtistID)
}

func (e *EnrichmentError) Unwrap() error { return e.Err }
