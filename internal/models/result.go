package models

// FileMatch is one ranked corpus file with its TF-IDF relevance score.
type FileMatch struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// SentenceMatch is one ranked sentence with its two ranking signals:
// Measure is the sum of IDFs over distinct query terms present in the
// sentence, Density the fraction of the sentence's tokens that are query
// terms.
type SentenceMatch struct {
	ID         string  `json:"id"`
	DocumentID string  `json:"document_id"`
	Text       string  `json:"text"`
	Measure    float64 `json:"measure"`
	Density    float64 `json:"density"`
}

// QueryResponse is the full result of one pipeline run. Sentences holds the
// final answer(s) in rank order; Files the documents they were drawn from.
// An empty corpus or a query with no usable terms produces an empty (not
// error) response.
type QueryResponse struct {
	Query              string          `json:"query"`
	Terms              []string        `json:"terms"`
	Files              []FileMatch     `json:"files"`
	Sentences          []SentenceMatch `json:"sentences"`
	CorpusSize         int             `json:"corpus_size"`
	CandidateSentences int             `json:"candidate_sentences"`
	QueryTime          int64           `json:"query_time_ms"`
}
