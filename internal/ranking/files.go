package ranking

import "sort"

// FileScore pairs a document ID with its TF-IDF relevance score.
type FileScore struct {
	ID    string
	Score float64
}

// ScoreFiles computes the TF-IDF score of every document for query: the sum
// over query terms present in the document of the term's raw count times
// its IDF. Terms absent from the IDF table contribute 0; query terms absent
// from the document contribute 0 (no penalty). The result is sorted by
// score descending, ties broken by document ID ascending so ranking is
// reproducible regardless of map iteration order.
func ScoreFiles(query TermSet, files map[string][]string, idfs map[string]float64) []FileScore {
	scored := make([]FileScore, 0, len(files))
	for id, tokens := range files {
		counts := make(map[string]int, query.Len())
		for _, tok := range tokens {
			if query.Contains(tok) {
				counts[tok]++
			}
		}
		score := 0.0
		for term, count := range counts {
			score += float64(count) * idfs[term]
		}
		scored = append(scored, FileScore{ID: id, Score: score})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ID < scored[j].ID
	})
	return scored
}

// TopFiles returns the IDs of the n highest-scoring documents for query,
// highest first. At most len(files) IDs are returned.
func TopFiles(query TermSet, files map[string][]string, idfs map[string]float64, n int) []string {
	scored := ScoreFiles(query, files, idfs)
	if n > len(scored) {
		n = len(scored)
	}
	if n < 0 {
		n = 0
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = scored[i].ID
	}
	return ids
}
