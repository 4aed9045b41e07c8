package hal

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// A Link is one entry of a resource's _links object.
type Link struct {
	Href      string `json:"href"`
	Templated bool   `json:"templated,omitempty"`
}

// A Resource is a decoded HAL document. Raw holds the whole body, so the
// resource's own properties can be decoded into any struct.
type Resource struct {
	Links    map[string]Link
	Embedded map[string]json.RawMessage
	Raw      json.RawMessage
}

type document struct {
	Links    map[string]json.RawMessage `json:"_links"`
	Embedded map[string]json.RawMessage `json:"_embedded"`
}

// Parse decodes a HAL document. A relation holding an array of links is
// collapsed to its first link.
func Parse(body []byte) (*Resource, error) {
	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	res := &Resource{
		Links:    make(map[string]Link, len(doc.Links)),
		Embedded: doc.Embedded,
		Raw:      body,
	}
	for rel, raw := range doc.Links {
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '[' {
			var links []Link
			if err := json.Unmarshal(raw, &links); err != nil {
				return nil, fmt.Errorf("%w: link '%s': %w", ErrDecode, rel, err)
			}
			if len(links) > 0 {
				res.Links[rel] = links[0]
			}
			continue
		}
		var link Link
		if err := json.Unmarshal(raw, &link); err != nil {
			return nil, fmt.Errorf("%w: link '%s': %w", ErrDecode, rel, err)
		}
		res.Links[rel] = link
	}
	return res, nil
}

// Link looks up a relation by name.
func (res *Resource) Link(rel string) (Link, bool) {
	link, ok := res.Links[rel]
	return link, ok && link.Href != ""
}

// Href returns the href of a relation, or "" if there is none.
func (res *Resource) Href(rel string) string {
	link, _ := res.Link(rel)
	return link.Href
}

// Decode unmarshals the resource's own properties into v.
func (res *Resource) Decode(v any) error {
	if err := json.Unmarshal(res.Raw, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// DecodeEmbedded unmarshals the named _embedded entry into v.
func (res *Resource) DecodeEmbedded(name string, v any) error {
	raw, ok := res.Embedded[name]
	if !ok {
		return fmt.Errorf("%w: no embedded '%s'", ErrDecode, name)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: embedded '%s': %w", ErrDecode, name, err)
	}
	return nil
}
