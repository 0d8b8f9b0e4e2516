// Package segment splits text passages into sentences.
package segment

import (
	"regexp"
	"strings"
	"unicode"
)

// boundary matches one sentence: a run of non-terminal characters followed
// by one or more terminal punctuation marks ("Really?!" is one sentence).
var boundary = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Segmenter splits passages into sentences on terminal punctuation.
// Abbreviations and decimal points are treated as boundaries too; for
// retrieval ranking that coarseness only shortens candidates, it never
// loses text.
type Segmenter struct{}

// NewSegmenter returns a new Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Split returns the sentences of passage in order, whitespace-trimmed.
// A trailing fragment without terminal punctuation is kept as a final
// sentence so no text is dropped. Fragments with no word content at all
// (punctuation or symbol runs like "...") are not sentences and are skipped.
func (s *Segmenter) Split(passage string) []string {
	var sentences []string
	last := 0
	for _, loc := range boundary.FindAllStringIndex(passage, -1) {
		if sent := strings.TrimSpace(passage[loc[0]:loc[1]]); hasWordContent(sent) {
			sentences = append(sentences, sent)
		}
		last = loc[1]
	}
	if rest := strings.TrimSpace(passage[last:]); hasWordContent(rest) {
		sentences = append(sentences, rest)
	}
	return sentences
}

func hasWordContent(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	})
}

// Passages splits text into newline-delimited passages, dropping blank
// lines. Sentence boundaries never span passages.
func Passages(text string) []string {
	lines := strings.Split(text, "\n")
	passages := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			passages = append(passages, trimmed)
		}
	}
	return passages
}
