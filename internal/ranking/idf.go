package ranking

import (
	"errors"
	"math"
)

// ErrNoDocuments is returned by ComputeIDFs for an empty document set; the
// caller must guarantee at least one document.
var ErrNoDocuments = errors.New("ranking: no documents")

// ErrEmptySentence is returned when a candidate sentence has no tokens;
// density has an undefined denominator, so empty sentences must be filtered
// out before ranking.
var ErrEmptySentence = errors.New("ranking: sentence has no tokens")

// ComputeIDFs returns the natural-log inverse document frequency of every
// term appearing in at least one document: idf(t) = ln(N / df(t)), where
// df(t) counts documents whose distinct term set contains t. No smoothing:
// a term present in every document has an IDF of exactly 0. Terms never
// seen are absent from the table; lookups during scoring default to 0.
// The input is not mutated.
func ComputeIDFs(docs map[string][]string) (map[string]float64, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	n := float64(len(docs))
	idfs := make(map[string]float64, len(df))
	for term, freq := range df {
		idfs[term] = math.Log(n / float64(freq))
	}
	return idfs, nil
}
