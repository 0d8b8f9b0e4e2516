// Package ranking implements the retrieval scoring pipeline: IDF tables,
// TF-IDF file ranking, and (matching-word measure, query-term density)
// sentence ranking.
package ranking

// TermSet is a set of normalized query terms. Duplicates collapse and order
// is irrelevant.
type TermSet map[string]struct{}

// NewTermSet builds a TermSet from a token sequence.
func NewTermSet(tokens []string) TermSet {
	set := make(TermSet, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// Contains reports whether term is in the set.
func (ts TermSet) Contains(term string) bool {
	_, ok := ts[term]
	return ok
}

// Len returns the number of distinct terms.
func (ts TermSet) Len() int {
	return len(ts)
}
