// Package corpus loads raw document text from a directory.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperjump/shitsumon/internal/extract"
	"github.com/hyperjump/shitsumon/internal/models"
)

// ErrNotFound indicates the corpus directory does not exist.
var ErrNotFound = errors.New("corpus directory not found")

// Loader reads every recognized file directly inside a directory.
type Loader struct {
	extractor  *extract.Extractor
	extensions map[string]struct{}
}

// NewLoader returns a Loader accepting the given extensions (with leading
// dot, case-insensitive). With no extensions, only ".txt" is accepted.
func NewLoader(extractor *extract.Extractor, extensions []string) *Loader {
	if len(extensions) == 0 {
		extensions = []string{".txt"}
	}
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	return &Loader{extractor: extractor, extensions: exts}
}

// Load returns one Document per recognized file in dir, in filename order.
// Subdirectories are not descended into; files with other extensions are
// skipped. Returns an error wrapping ErrNotFound when dir does not exist or
// is not a directory.
func (l *Loader) Load(dir string) ([]models.Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("stat corpus dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}
	docs := make([]models.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, ok := l.extensions[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}
		text, err := l.extractor.Extract(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", name, err)
		}
		docs = append(docs, models.Document{ID: name, Text: text})
	}
	return docs, nil
}
