// Package models defines core data structures for documents, sentences, and
// query results.
package models

// Document is one corpus file: its identifier (the filename) and the raw
// text extracted from it.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"-"`
}

// Sentence is a candidate answer sentence extracted from a ranked document.
// Index is the extraction order across all candidates and is the final
// tie-break when ranking signals are equal, so results stay reproducible.
type Sentence struct {
	ID         string   `json:"id"`
	DocumentID string   `json:"document_id"`
	Text       string   `json:"text"`
	Index      int      `json:"index"`
	Tokens     []string `json:"-"`
}
