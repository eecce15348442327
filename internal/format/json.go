// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/pdiddy/presentation-formatter/pkg/types"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// JSONReader reads a Document from a single JSON object. Unknown fields are
// ignored and missing fields stay empty. A lenient reader also accepts
// comments and trailing commas (JWCC).
type JSONReader struct {
	lenient bool
}

// NewJSONReader returns a strict reader for the json selector.
func NewJSONReader() *JSONReader {
	return &JSONReader{}
}

// NewJSONCReader returns a reader for the jsonc selector, which accepts
// comments and trailing commas.
func NewJSONCReader() *JSONReader {
	return &JSONReader{lenient: true}
}

// Read parses the JSON document at path.
func (r *JSONReader) Read(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, newError(KindRead, path, err)
	}
	doc, err := r.parse(data)
	if err != nil {
		return types.Document{}, newError(KindParse, path, err)
	}
	return doc, nil
}

func (r *JSONReader) parse(data []byte) (types.Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if r.lenient {
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return types.Document{}, fmt.Errorf("invalid JSON: %w", err)
		}
		data = standardized
	}

	value, err := decodeJSON(data)
	if err != nil {
		return types.Document{}, err
	}
	if err := validateDocument(value); err != nil {
		return types.Document{}, err
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}
