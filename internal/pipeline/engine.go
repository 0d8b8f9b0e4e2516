// Package pipeline orchestrates corpus loading, file ranking, and sentence
// ranking into a single query flow.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/shitsumon/internal/config"
	"github.com/hyperjump/shitsumon/internal/corpus"
	"github.com/hyperjump/shitsumon/internal/models"
	"github.com/hyperjump/shitsumon/internal/ranking"
	"github.com/hyperjump/shitsumon/internal/segment"
	"github.com/hyperjump/shitsumon/internal/tokenize"
	"github.com/hyperjump/shitsumon/pkg/utils"
)

// Engine runs the full retrieval pipeline: load the corpus, rank files by
// TF-IDF against the query, extract candidate sentences from the top files,
// and rank those by matching-word measure and query-term density.
//
// File ranking and sentence ranking use separate IDF tables. The file table
// is computed over the whole corpus; the sentence table only over the
// candidate sentences. The two are never merged: a term rare in the corpus
// can be common among candidates and vice versa.
type Engine struct {
	loader    *corpus.Loader
	tokenizer *tokenize.Tokenizer
	segmenter *segment.Segmenter
	ranking   config.RankingConfig
	logger    *zap.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used by the engine.
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an Engine from its collaborators. The ranking config
// supplies default result counts for queries that do not set their own.
func NewEngine(loader *corpus.Loader, tokenizer *tokenize.Tokenizer, rankingCfg config.RankingConfig, opts ...EngineOption) *Engine {
	e := &Engine{
		loader:    loader,
		tokenizer: tokenizer,
		segmenter: segment.NewSegmenter(),
		ranking:   rankingCfg,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Answer runs one query against the corpus in dir and returns the ranked
// response. An empty corpus yields an empty response, not an error. A missing
// corpus directory yields an error wrapping corpus.ErrNotFound.
func (e *Engine) Answer(ctx context.Context, dir string, query *models.Query) (*models.QueryResponse, error) {
	start := time.Now()

	fileMatches := query.FileMatches
	if fileMatches <= 0 {
		fileMatches = e.ranking.FileMatches
	}
	sentenceMatches := query.SentenceMatches
	if sentenceMatches <= 0 {
		sentenceMatches = e.ranking.SentenceMatches
	}

	resp := &models.QueryResponse{
		Query:     query.Text,
		Files:     []models.FileMatch{},
		Sentences: []models.SentenceMatch{},
	}

	docs, err := e.loader.Load(dir)
	if err != nil {
		return nil, err
	}
	resp.CorpusSize = len(docs)
	if len(docs) == 0 {
		e.logger.Warn("corpus is empty", zap.String("dir", dir))
		resp.QueryTime = time.Since(start).Milliseconds()
		return resp, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	texts := make(map[string]string, len(docs))
	fileTokens := make(map[string][]string, len(docs))
	for _, doc := range docs {
		texts[doc.ID] = doc.Text
		fileTokens[doc.ID] = e.tokenizer.Tokenize(doc.Text)
	}
	fileIDFs, err := ranking.ComputeIDFs(fileTokens)
	if err != nil {
		return nil, fmt.Errorf("compute file idfs: %w", err)
	}

	resp.Terms = e.tokenizer.Tokenize(query.Text)
	queryTerms := ranking.NewTermSet(resp.Terms)
	e.logger.Debug("tokenized query",
		zap.String("query", query.Text),
		zap.Strings("terms", resp.Terms))

	topFiles := ranking.ScoreFiles(queryTerms, fileTokens, fileIDFs)
	if fileMatches < len(topFiles) {
		topFiles = topFiles[:fileMatches]
	}
	for _, fs := range topFiles {
		resp.Files = append(resp.Files, models.FileMatch{ID: fs.ID, Score: fs.Score})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sentences := e.extractSentences(texts, topFiles)
	resp.CandidateSentences = len(sentences)
	if len(sentences) == 0 {
		e.logger.Warn("no candidate sentences in top files")
		resp.QueryTime = time.Since(start).Milliseconds()
		return resp, nil
	}

	// Sentence IDF table, computed over the candidates alone.
	sentTokens := make(map[string][]string, len(sentences))
	for _, sent := range sentences {
		sentTokens[sent.ID] = sent.Tokens
	}
	sentIDFs, err := ranking.ComputeIDFs(sentTokens)
	if err != nil {
		return nil, fmt.Errorf("compute sentence idfs: %w", err)
	}

	top, err := ranking.TopSentences(queryTerms, sentences, sentIDFs, sentenceMatches)
	if err != nil {
		return nil, fmt.Errorf("rank sentences: %w", err)
	}
	for _, ss := range top {
		resp.Sentences = append(resp.Sentences, models.SentenceMatch{
			ID:         ss.Sentence.ID,
			DocumentID: ss.Sentence.DocumentID,
			Text:       ss.Sentence.Text,
			Measure:    ss.Measure,
			Density:    ss.Density,
		})
		e.logger.Debug("ranked sentence",
			zap.String("text", utils.Truncate(ss.Sentence.Text, 80)),
			zap.Float64("measure", ss.Measure),
			zap.Float64("density", ss.Density))
	}

	resp.QueryTime = time.Since(start).Milliseconds()
	e.logger.Info("query answered",
		zap.Int("corpus_size", resp.CorpusSize),
		zap.Int("candidates", resp.CandidateSentences),
		zap.Int64("query_time_ms", resp.QueryTime))
	return resp, nil
}

// extractSentences splits the top files into tokenized candidate sentences.
// Sentences whose tokens are all stopwords or punctuation are skipped, and
// sentences with identical text are collapsed to the first occurrence so a
// repeated sentence cannot fill the result list. Index records extraction
// order across all top files and is the final ranking tie-break.
func (e *Engine) extractSentences(docs map[string]string, topFiles []ranking.FileScore) []models.Sentence {
	var sentences []models.Sentence
	seen := make(map[string]struct{})
	for _, fs := range topFiles {
		for _, passage := range segment.Passages(docs[fs.ID]) {
			for _, text := range e.segmenter.Split(passage) {
				if _, dup := seen[text]; dup {
					continue
				}
				tokens := e.tokenizer.Tokenize(text)
				if len(tokens) == 0 {
					continue
				}
				seen[text] = struct{}{}
				sentences = append(sentences, models.Sentence{
					ID:         fs.ID + "_" + uuid.New().String()[:8],
					DocumentID: fs.ID,
					Text:       text,
					Index:      len(sentences),
					Tokens:     tokens,
				})
			}
		}
	}
	return sentences
}
