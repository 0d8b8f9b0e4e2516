// Package extract converts document files of several formats to plain text.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extractor extracts plain text from document files.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path and returns its text content, dispatching
// on the file extension.
func (e *Extractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return e.FromBytes(data, strings.ToLower(filepath.Ext(path)))
}

// FromBytes extracts text from data; ext includes the leading dot (e.g.
// ".pdf"). PDF, DOCX, and XLSX are parsed from their binary formats; every
// other extension is treated as plain UTF-8 text.
func (e *Extractor) FromBytes(data []byte, ext string) (string, error) {
	switch ext {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".xlsx":
		return excelText(data)
	default:
		return plainText(data), nil
	}
}
