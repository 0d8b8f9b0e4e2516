// Package tokenize normalizes raw text into scoring terms.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/token/stop"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
)

// Tokenizer converts raw text into an ordered sequence of normalized terms:
// unicode word tokens, lowercased, with English stopwords removed.
// Punctuation never produces terms since the unicode tokenizer only emits
// word tokens. No stemming is applied: the IDF tables key on surface terms,
// so "bayes" must not collapse with "bayesian".
type Tokenizer struct {
	analyzer *analysis.DefaultAnalyzer
}

// NewTokenizer builds the analysis chain. The stop list is loaded once at
// construction and never mutated afterwards. extraStopwords are added to the
// built-in English list (e.g. boilerplate words present in every corpus file).
func NewTokenizer(extraStopwords ...string) (*Tokenizer, error) {
	stopMap := analysis.NewTokenMap()
	if err := stopMap.LoadBytes(en.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("load english stopwords: %w", err)
	}
	for _, w := range extraStopwords {
		stopMap.AddToken(strings.ToLower(w))
	}
	return &Tokenizer{
		analyzer: &analysis.DefaultAnalyzer{
			Tokenizer: unicode.NewUnicodeTokenizer(),
			TokenFilters: []analysis.TokenFilter{
				lowercase.NewLowerCaseFilter(),
				stop.NewStopTokensFilter(stopMap),
			},
		},
	}, nil
}

// Tokenize returns the normalized terms of text in order. Text with no word
// content yields nil.
func (t *Tokenizer) Tokenize(text string) []string {
	stream := t.analyzer.Analyze([]byte(text))
	if len(stream) == 0 {
		return nil
	}
	terms := make([]string, 0, len(stream))
	for _, tok := range stream {
		terms = append(terms, string(tok.Term))
	}
	return terms
}
