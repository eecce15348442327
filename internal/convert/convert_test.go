// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/presentation-formatter/internal/format"
	"github.com/pdiddy/presentation-formatter/internal/logging"
	"github.com/pdiddy/presentation-formatter/pkg/types"
)

// fakeReader implements format.Reader for testing. It returns a canned
// document or an error and records the paths it was asked to read.
type fakeReader struct {
	doc   types.Document
	err   error
	calls []string
}

func (f *fakeReader) Read(path string) (types.Document, error) {
	f.calls = append(f.calls, path)
	if f.err != nil {
		return types.Document{}, f.err
	}
	return f.doc, nil
}

// fakeWriter implements format.Writer for testing.
type fakeWriter struct {
	err   error
	paths []string
	docs  []types.Document
}

func (f *fakeWriter) Write(path string, doc types.Document) error {
	f.paths = append(f.paths, path)
	f.docs = append(f.docs, doc)
	return f.err
}

func fakeRegistry(r *fakeReader, w *fakeWriter) *format.Registry {
	reg := format.NewRegistry()
	reg.RegisterReader("fake", r)
	reg.RegisterWriter("fake", w)
	return reg
}

func TestRun(t *testing.T) {
	doc := types.Document{Title: "T", Sections: []types.Section{{Title: "a"}, {Title: "b"}}}
	r := &fakeReader{doc: doc}
	w := &fakeWriter{}

	cfg := types.ConvertConfig{InputFile: "in", OutputFile: "out", InputFormat: "fake", OutputFormat: "fake"}
	result, err := Run(fakeRegistry(r, w), cfg, logging.NoOp())
	require.NoError(t, err)

	assert.Equal(t, Result{InputFile: "in", OutputFile: "out", Sections: 2}, result)
	assert.Equal(t, []string{"in"}, r.calls)
	assert.Equal(t, []string{"out"}, w.paths)
	assert.Equal(t, []types.Document{doc}, w.docs)
}

func TestRun_UnknownSelectorsFailFast(t *testing.T) {
	tests := []struct {
		name         string
		inputFormat  string
		outputFormat string
		wantMsg      string
	}{
		{name: "unknown input", inputFormat: "xml", outputFormat: "fake", wantMsg: `unsupported input format "xml"`},
		{name: "unknown output", inputFormat: "fake", outputFormat: "pdf", wantMsg: `unsupported output format "pdf"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeReader{}
			w := &fakeWriter{}
			cfg := types.ConvertConfig{InputFile: "in", OutputFile: "out", InputFormat: tt.inputFormat, OutputFormat: tt.outputFormat}

			_, err := Run(fakeRegistry(r, w), cfg, logging.NoOp())
			require.Error(t, err)
			assert.True(t, format.IsKind(err, format.KindConfiguration))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, r.calls, "reader must not run")
			assert.Empty(t, w.paths, "writer must not run")
		})
	}
}

func TestRun_StopsOnFirstFailure(t *testing.T) {
	readErr := errors.New("read failed")
	r := &fakeReader{err: readErr}
	w := &fakeWriter{}
	cfg := types.ConvertConfig{InputFile: "in", OutputFile: "out", InputFormat: "fake", OutputFormat: "fake"}

	_, err := Run(fakeRegistry(r, w), cfg, logging.NoOp())
	assert.ErrorIs(t, err, readErr)
	assert.Empty(t, w.paths)

	writeErr := errors.New("write failed")
	_, err = Run(fakeRegistry(&fakeReader{}, &fakeWriter{err: writeErr}), cfg, logging.NoOp())
	assert.ErrorIs(t, err, writeErr)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	code := filepath.Join(dir, "ownership.rs")
	require.NoError(t, os.WriteFile(code, []byte(`fn main() { let s = String::from("hi"); }`), 0o644))

	tests := []struct {
		name        string
		inputFormat string
		inputName   string
		input       string
		want        string
	}{
		{
			name:        "json",
			inputFormat: types.InputJSON,
			inputName:   "doc.json",
			input:       `{"title":"Demo","sections":[{"title":"Intro","introduction":"Hello","code":"","details":""},{"title":"Code","code":` + quote(code) + `}]}`,
			want: "# Demo\n## Intro\nHello\n\n----\n\n" +
				"## Code\n```rust=\nfn main() { let s = String::from(\"hi\"); }\n```\n\n----\n\n",
		},
		{
			name:        "csv",
			inputFormat: types.InputCSV,
			inputName:   "doc.csv",
			input:       "code,title\n" + code + ",Code\n,\n",
			want: "## Code\n```rust=\nfn main() { let s = String::from(\"hi\"); }\n```\n\n----\n\n" +
				"\n----\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := filepath.Join(t.TempDir(), tt.inputName)
			require.NoError(t, os.WriteFile(in, []byte(tt.input), 0o644))
			out := filepath.Join(t.TempDir(), "output.md")

			reg, err := format.NewDefaultRegistry(types.HackMDConfig{LineNumbers: true, SourceCacheSize: 4})
			require.NoError(t, err)

			cfg := types.ConvertConfig{InputFile: in, OutputFile: out, InputFormat: tt.inputFormat, OutputFormat: types.OutputHackMD}
			_, err = Run(reg, cfg, logging.NoOp())
			require.NoError(t, err)

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestRun_MissingCodeFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.json")
	missing := filepath.Join(dir, "nope.rs")
	require.NoError(t, os.WriteFile(in, []byte(`{"sections":[{"title":"a"},{"code":`+quote(missing)+`}]}`), 0o644))

	reg, err := format.NewDefaultRegistry(types.HackMDConfig{SourceCacheSize: 4})
	require.NoError(t, err)

	cfg := types.ConvertConfig{InputFile: in, OutputFile: filepath.Join(dir, "out.md"), InputFormat: types.InputJSON, OutputFormat: types.OutputHackMD}
	_, err = Run(reg, cfg, logging.NoOp())
	require.Error(t, err)
	assert.True(t, format.IsKind(err, format.KindSourceFile))
}

func TestReadDocument(t *testing.T) {
	doc := types.Document{Title: "T"}
	r := &fakeReader{doc: doc}
	reg := fakeRegistry(r, &fakeWriter{})

	got, err := ReadDocument(reg, types.ConvertConfig{InputFile: "in", InputFormat: "fake"})
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	_, err = ReadDocument(reg, types.ConvertConfig{InputFile: "in", InputFormat: "nope"})
	assert.True(t, format.IsKind(err, format.KindConfiguration))
}

// quote renders s as a JSON string literal.
func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestSampleFixturesAgree(t *testing.T) {
	reg, err := format.NewDefaultRegistry(types.HackMDConfig{SourceCacheSize: 4})
	require.NoError(t, err)

	fromJSON, err := ReadDocument(reg, types.ConvertConfig{InputFile: "../../testdata/sample.json", InputFormat: types.InputJSON})
	require.NoError(t, err)
	fromCSV, err := ReadDocument(reg, types.ConvertConfig{InputFile: "../../testdata/sample.csv", InputFormat: types.InputCSV})
	require.NoError(t, err)

	assert.Equal(t, "Ownership and Borrowing", fromJSON.Title)
	assert.Empty(t, fromCSV.Title)
	require.Len(t, fromCSV.Sections, len(fromJSON.Sections))
	for i := range fromJSON.Sections {
		assert.Equal(t, fromJSON.Sections[i].Title, fromCSV.Sections[i].Title)
		assert.Equal(t, fromJSON.Sections[i].Code, fromCSV.Sections[i].Code)
	}
}
