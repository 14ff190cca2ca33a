// Package fieldbag provides null-safe typed access to the flat field mapping
// returned by the recognition service for one document. Extraction failures
// are recorded on an error sink instead of being returned as errors; callers
// always get a usable zero value back.
package fieldbag

import "encoding/json"

// Field is one value descriptor in the bag. The service returns richer
// structures (bounding boxes, confidence); only the text rendering matters
// here.
type Field struct {
	Text string `json:"text"`
}

// Bag is the flat key -> field mapping for one recognized document. Keys are
// service-defined and not statically known.
type Bag map[string]*Field

// Parse decodes a raw fields object into a Bag.
func Parse(raw json.RawMessage) (Bag, error) {
	var b Bag
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, err
	}
	return b, nil
}

// Has reports whether the key is present with a non-null descriptor. Line
// discovery uses this to decide whether a positional line exists.
func (b Bag) Has(key string) bool {
	f, ok := b[key]
	return ok && f != nil
}
