// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultSourceCacheSize = 64

// defaultLanguage is the fence tag used when the extension is unknown.
const defaultLanguage = "rust"

// languageByExt maps code file extensions to fence language tags.
var languageByExt = map[string]string{
	".rs":   "rust",
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".java": "java",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cc":   "cpp",
	".hpp":  "cpp",
	".cs":   "csharp",
	".rb":   "ruby",
	".sh":   "bash",
	".sol":  "solidity",
	".sql":  "sql",
	".toml": "toml",
	".yaml": "yaml",
	".yml":  "yaml",
	".json": "json",
}

// LanguageFor returns the fence language tag for a code file path.
func LanguageFor(path string) string {
	if lang, ok := languageByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return defaultLanguage
}

// SourceLoader reads section code files in full. Contents are cached by
// cleaned path so a file referenced by several sections is read once.
// Failed reads are not cached.
type SourceLoader struct {
	cache *lru.Cache[string, string]
	reads int
}

// NewSourceLoader creates a loader caching up to size files. A size below
// one uses the default of 64.
func NewSourceLoader(size int) (*SourceLoader, error) {
	if size < 1 {
		size = defaultSourceCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("creating source cache: %w", err)
	}
	return &SourceLoader{cache: cache}, nil
}

// Load returns the full contents of the file at path.
func (l *SourceLoader) Load(path string) (string, error) {
	key := filepath.Clean(path)
	if contents, ok := l.cache.Get(key); ok {
		return contents, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	l.reads++

	contents := string(data)
	l.cache.Add(key, contents)
	return contents, nil
}

// Reads returns how many files were read from disk.
func (l *SourceLoader) Reads() int {
	return l.reads
}

// Purge drops every cached file so the next run sees fresh contents.
func (l *SourceLoader) Purge() {
	l.cache.Purge()
}
