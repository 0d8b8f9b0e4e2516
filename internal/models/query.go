package models

// Query holds one question and its result-count settings. Zero counts mean
// "use the configured default".
type Query struct {
	Text            string `json:"text"`
	FileMatches     int    `json:"file_matches,omitempty"`
	SentenceMatches int    `json:"sentence_matches,omitempty"`
}
