package ranking

import (
	"fmt"
	"sort"

	"github.com/hyperjump/shitsumon/internal/models"
)

// SentenceScore pairs a candidate sentence with its two ranking signals.
type SentenceScore struct {
	Sentence models.Sentence
	// Measure is the matching-word measure: the sum of IDFs over distinct
	// query terms present in the sentence, each counted at most once no
	// matter how often it repeats.
	Measure float64
	// Density is the query-term density: the fraction of the sentence's
	// tokens that are query terms, in [0, 1].
	Density float64
}

// ScoreSentences computes (measure, density) for every candidate. Returns
// an error wrapping ErrEmptySentence if a candidate has no tokens; the
// orchestrator must filter those out before ranking.
func ScoreSentences(query TermSet, sentences []models.Sentence, idfs map[string]float64) ([]SentenceScore, error) {
	scored := make([]SentenceScore, 0, len(sentences))
	for _, sent := range sentences {
		if len(sent.Tokens) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptySentence, sent.ID)
		}
		present := make(map[string]struct{}, query.Len())
		matched := 0
		for _, tok := range sent.Tokens {
			if query.Contains(tok) {
				matched++
				present[tok] = struct{}{}
			}
		}
		measure := 0.0
		for term := range present {
			measure += idfs[term]
		}
		scored = append(scored, SentenceScore{
			Sentence: sent,
			Measure:  measure,
			Density:  float64(matched) / float64(len(sent.Tokens)),
		})
	}
	return scored, nil
}

// TopSentences returns up to n sentences ranked by matching-word measure
// descending, then query-term density descending, then extraction order
// (Sentence.Index ascending). The last tie-break makes equal-signal
// orderings deterministic across runs.
func TopSentences(query TermSet, sentences []models.Sentence, idfs map[string]float64, n int) ([]SentenceScore, error) {
	scored, err := ScoreSentences(query, sentences, idfs)
	if err != nil {
		return nil, err
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Measure != scored[j].Measure {
			return scored[i].Measure > scored[j].Measure
		}
		if scored[i].Density != scored[j].Density {
			return scored[i].Density > scored[j].Density
		}
		return scored[i].Sentence.Index < scored[j].Sentence.Index
	})
	if n > len(scored) {
		n = len(scored)
	}
	if n < 0 {
		n = 0
	}
	return scored[:n], nil
}
