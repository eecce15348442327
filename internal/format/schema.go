// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const documentSchemaURL = "document.schema.json"

//go:embed document.schema.json
var documentSchemaJSON []byte

var compileDocumentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(documentSchemaURL, bytes.NewReader(documentSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(documentSchemaURL)
})

// decodeJSON decodes data into a generic value for schema validation.
// Numbers stay json.Number and trailing content after the top-level value
// is rejected.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: unexpected data after top-level value")
	}
	return value, nil
}

// validateDocument checks a decoded value against the document schema and
// returns an error naming the first offending location.
func validateDocument(value any) error {
	schema, err := compileDocumentSchema()
	if err != nil {
		return fmt.Errorf("compiling document schema: %w", err)
	}

	err = schema.Validate(value)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	leaf := firstLeaf(verr)
	location := strings.TrimSpace(leaf.InstanceLocation)
	if location == "" {
		location = "/"
	}
	return fmt.Errorf("%s: %s", location, strings.TrimSpace(leaf.Message))
}

func firstLeaf(node *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(node.Causes) > 0 {
		node = node.Causes[0]
	}
	return node
}
