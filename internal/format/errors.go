// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure. Every kind is terminal for the run.
type Kind string

const (
	// KindRead means the input document could not be opened or read.
	KindRead Kind = "read error"
	// KindParse means the input document does not conform to its format.
	KindParse Kind = "parse error"
	// KindSourceFile means a section's code file could not be read.
	KindSourceFile Kind = "source file error"
	// KindWrite means the output file could not be created or written.
	KindWrite Kind = "write error"
	// KindConfiguration means a format selector is not registered.
	KindConfiguration Kind = "configuration error"
)

// Error is a conversion failure tagged with its Kind and the path involved.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err, or any error it wraps, is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Kind == kind
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
