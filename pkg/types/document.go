// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the presentation document model and run
// configuration shared by the readers, writers and CLI.
package types

// Document is the presentation content shared by every reader and writer: a
// title and an ordered list of sections. Section order is the output order.
type Document struct {
	// Title is the document heading. Empty means no title line is emitted.
	Title string `json:"title" yaml:"title"`

	// Sections lists the presentation sections in source order.
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is one titled chunk of a presentation: introduction prose, an
// optional source file embedded as a code block, and trailing details.
type Section struct {
	Title        string `json:"title" yaml:"title"`
	Introduction string `json:"introduction" yaml:"introduction"`

	// Code is a path to a source file whose contents are embedded at write
	// time. It is never the code itself.
	Code string `json:"code" yaml:"code"`

	Details string `json:"details" yaml:"details"`
}

// IsEmpty reports whether every field of the section is empty.
func (s Section) IsEmpty() bool {
	return s.Title == "" && s.Introduction == "" && s.Code == "" && s.Details == ""
}
