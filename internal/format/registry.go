// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/presentation-formatter/pkg/types"
)

// Registry maps format selectors to reader and writer implementations.
type Registry struct {
	readers map[string]Reader
	writers map[string]Writer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		readers: make(map[string]Reader),
		writers: make(map[string]Writer),
	}
}

// NewDefaultRegistry registers the json, jsonc and csv readers and the hackmd
// writer configured from cfg.
func NewDefaultRegistry(cfg types.HackMDConfig) (*Registry, error) {
	sources, err := NewSourceLoader(cfg.SourceCacheSize)
	if err != nil {
		return nil, err
	}

	reg := NewRegistry()
	reg.RegisterReader(types.InputJSON, NewJSONReader())
	reg.RegisterReader(types.InputJSONC, NewJSONCReader())
	reg.RegisterReader(types.InputCSV, NewCSVReader())
	reg.RegisterWriter(types.OutputHackMD, NewHackMDWriter(cfg, sources))
	return reg, nil
}

// RegisterReader binds name to r, replacing any previous binding.
func (r *Registry) RegisterReader(name string, rd Reader) {
	r.readers[name] = rd
}

// RegisterWriter binds name to w, replacing any previous binding.
func (r *Registry) RegisterWriter(name string, w Writer) {
	r.writers[name] = w
}

// Reader resolves an input selector. Unknown selectors fail with
// KindConfiguration listing the valid ones.
func (r *Registry) Reader(name string) (Reader, error) {
	rd, ok := r.readers[name]
	if !ok {
		return nil, newError(KindConfiguration, "", fmt.Errorf("unsupported input format %q: use %s", name, strings.Join(r.ReaderNames(), ", ")))
	}
	return rd, nil
}

// Writer resolves an output selector. Unknown selectors fail with
// KindConfiguration listing the valid ones.
func (r *Registry) Writer(name string) (Writer, error) {
	w, ok := r.writers[name]
	if !ok {
		return nil, newError(KindConfiguration, "", fmt.Errorf("unsupported output format %q: use %s", name, strings.Join(r.WriterNames(), ", ")))
	}
	return w, nil
}

// ReaderNames returns the registered input selectors, sorted.
func (r *Registry) ReaderNames() []string {
	return sortedKeys(r.readers)
}

// WriterNames returns the registered output selectors, sorted.
func (r *Registry) WriterNames() []string {
	return sortedKeys(r.writers)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
