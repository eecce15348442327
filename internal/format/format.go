// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format implements the readers and writers that move presentation
// content between JSON, CSV and HackMD Markdown.
//
// Readers parse an input file into a types.Document; writers serialize a
// Document to an output file. A Registry maps format selectors ("json",
// "csv", "hackmd") to implementations.
package format

import "github.com/pdiddy/presentation-formatter/pkg/types"

// Reader parses an input file into a Document. Different input formats
// (JSON, CSV) implement this interface.
type Reader interface {
	// Read parses the file at path. It fails with KindRead when the file
	// cannot be opened and KindParse when its content is malformed.
	Read(path string) (types.Document, error)
}

// Writer serializes a Document into an output file.
type Writer interface {
	// Write renders doc to path, replacing any existing file. It fails with
	// KindSourceFile when a referenced code file cannot be read and
	// KindWrite when the output cannot be written.
	Write(path string, doc types.Document) error
}
