// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/presentation-formatter/pkg/types"
)

// sectionColumns maps CSV header names to the Section field they fill.
var sectionColumns = map[string]func(*types.Section, string){
	"title":        func(s *types.Section, v string) { s.Title = v },
	"introduction": func(s *types.Section, v string) { s.Introduction = v },
	"code":         func(s *types.Section, v string) { s.Code = v },
	"details":      func(s *types.Section, v string) { s.Details = v },
}

// CSVReader reads a Document from a table whose header names the Section
// fields in any order. Each data row becomes one section. The table has no
// document-level title, so the resulting Document title is always empty.
type CSVReader struct{}

// NewCSVReader returns a reader for the csv selector.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Read parses the CSV file at path.
func (r *CSVReader) Read(path string) (types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Document{}, newError(KindRead, path, err)
	}
	defer f.Close()

	doc, err := parseCSV(f)
	if err != nil {
		return types.Document{}, newError(KindParse, path, err)
	}
	return doc, nil
}

func parseCSV(in io.Reader) (types.Document, error) {
	rdr := csv.NewReader(in)
	// Every row must match the header's column count.
	rdr.FieldsPerRecord = 0

	header, err := rdr.Read()
	if errors.Is(err, io.EOF) {
		return types.Document{}, fmt.Errorf("missing header row")
	}
	if err != nil {
		return types.Document{}, fmt.Errorf("reading header: %w", err)
	}

	setters, err := headerSetters(header)
	if err != nil {
		return types.Document{}, err
	}

	doc := types.Document{Sections: []types.Section{}}
	for {
		record, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return types.Document{}, err
		}

		var section types.Section
		for i, value := range record {
			if set := setters[i]; set != nil {
				set(&section, value)
			}
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc, nil
}

// headerSetters resolves each header column to its Section setter. Unknown
// columns get a nil setter and are ignored.
func headerSetters(header []string) ([]func(*types.Section, string), error) {
	setters := make([]func(*types.Section, string), len(header))
	seen := make(map[string]bool, len(sectionColumns))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, string(utf8BOM))
		}
		name = strings.TrimSpace(name)
		set, ok := sectionColumns[name]
		if !ok {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q in header", name)
		}
		seen[name] = true
		setters[i] = set
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("missing header row: expected columns title, introduction, code, details")
	}
	return setters, nil
}
