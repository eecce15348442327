// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/pdiddy/presentation-formatter/pkg/types"
)

const (
	fence          = "```"
	sectionDivider = "\n----\n\n"
	outputPerms    = 0o644
)

// HackMDWriter renders a Document as HackMD Markdown. Sections are emitted
// in order with only their non-empty fields; code files are embedded as
// fenced blocks and every section ends with a horizontal rule.
type HackMDWriter struct {
	cfg     types.HackMDConfig
	sources *SourceLoader
}

// NewHackMDWriter creates a writer using cfg for fence rendering and
// sources for reading code files.
func NewHackMDWriter(cfg types.HackMDConfig, sources *SourceLoader) *HackMDWriter {
	return &HackMDWriter{cfg: cfg, sources: sources}
}

// Write renders doc and writes it to path in one pass. The output file is
// only touched once every code file has been read.
func (w *HackMDWriter) Write(path string, doc types.Document) error {
	content, err := w.Render(doc)
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return newError(KindWrite, path, err)
	}
	// atomic.WriteFile doesn't set permissions for new files.
	if err := os.Chmod(path, outputPerms); err != nil {
		return newError(KindWrite, path, fmt.Errorf("setting permissions: %w", err))
	}
	return nil
}

// Render returns the Markdown text for doc without writing it.
func (w *HackMDWriter) Render(doc types.Document) (string, error) {
	w.sources.Purge()

	var b strings.Builder
	if doc.Title != "" {
		b.WriteString("# " + doc.Title + "\n")
	}
	for _, s := range doc.Sections {
		if err := w.renderSection(&b, s); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func (w *HackMDWriter) renderSection(b *strings.Builder, s types.Section) error {
	if s.Title != "" {
		b.WriteString("## " + s.Title + "\n")
	}
	if s.Introduction != "" {
		b.WriteString(s.Introduction + "\n")
	}
	if s.Code != "" {
		contents, err := w.sources.Load(s.Code)
		if err != nil {
			return newError(KindSourceFile, s.Code, err)
		}
		b.WriteString(w.openFence(s.Code) + "\n")
		b.WriteString(contents)
		b.WriteString("\n" + fence + "\n")
	}
	if s.Details != "" {
		b.WriteString(s.Details + "\n")
	}
	b.WriteString(sectionDivider)
	return nil
}

// openFence builds the language-tagged opening fence, e.g. "```rust=".
func (w *HackMDWriter) openFence(codePath string) string {
	lang := w.cfg.CodeLanguage
	if lang == "" {
		lang = LanguageFor(codePath)
	}
	marker := fence + lang
	if w.cfg.LineNumbers {
		marker += "="
	}
	return marker
}
