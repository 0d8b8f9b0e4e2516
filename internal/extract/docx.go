package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
)

// docxDocumentPath is the main document body inside a .docx package.
const docxDocumentPath = "word/document.xml"

// docxTextNode matches <w:t>text</w:t> including attributed forms like
// <w:t xml:space="preserve">. Matching text nodes directly keeps content
// extractable regardless of paragraph/run attributes.
var docxTextNode = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// docxText extracts text from .docx bytes. DOCX is a ZIP containing OOXML;
// all <w:t> text nodes of the main document are joined with spaces and XML
// entities are unescaped.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: not a zip: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != docxDocumentPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("parse docx: open %s: %w", f.Name, err)
		}
		raw, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return "", fmt.Errorf("parse docx: read %s: %w", f.Name, err)
		}
		matches := docxTextNode.FindAllSubmatch(raw, -1)
		parts := make([]string, 0, len(matches))
		for _, m := range matches {
			if s := strings.TrimSpace(html.UnescapeString(string(m[1]))); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " "), nil
	}
	return "", fmt.Errorf("parse docx: %s missing", docxDocumentPath)
}
