// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links extracts "(title)(url)" markup pairs from presentation text.
// It is independent of the conversion pipeline; callers use it to
// post-process text fields.
package links

import (
	"regexp"

	"github.com/pdiddy/presentation-formatter/pkg/types"
)

// linkPattern matches "(title)(url)". Neither group may contain parentheses
// or newlines: adjacent links on one line are matched separately, a pair
// never spans lines, and a URL with its own parentheses such as
// ".../Rust_(lang)" is not matched at all.
var linkPattern = regexp.MustCompile(`\(([^()\n]+)\)\(([^()\n]+)\)`)

// Link is one extracted title/URL pair.
type Link struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Extract returns every non-overlapping link in text, left to right. It
// returns an empty slice when nothing matches.
func Extract(text string) []Link {
	matches := linkPattern.FindAllStringSubmatch(text, -1)
	out := make([]Link, 0, len(matches))
	for _, m := range matches {
		out = append(out, Link{Title: m[1], URL: m[2]})
	}
	return out
}

// FromDocument extracts links from the document title and from each
// section's introduction and details, in document order.
func FromDocument(doc types.Document) []Link {
	out := Extract(doc.Title)
	for _, s := range doc.Sections {
		out = append(out, Extract(s.Introduction)...)
		out = append(out, Extract(s.Details)...)
	}
	return out
}
