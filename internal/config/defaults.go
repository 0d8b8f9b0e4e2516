package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Corpus.Extensions == nil {
		cfg.Corpus.Extensions = []string{".txt", ".md", ".rst", ".pdf", ".docx", ".xlsx"}
	}
	if cfg.Ranking.FileMatches == 0 {
		cfg.Ranking.FileMatches = 1
	}
	if cfg.Ranking.SentenceMatches == 0 {
		cfg.Ranking.SentenceMatches = 1
	}
}
