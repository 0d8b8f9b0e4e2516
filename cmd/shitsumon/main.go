// Package main is the shitsumon CLI entry point.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/hyperjump/shitsumon/internal/cli"
	"github.com/hyperjump/shitsumon/internal/config"
	"github.com/hyperjump/shitsumon/internal/corpus"
	"github.com/hyperjump/shitsumon/internal/extract"
	"github.com/hyperjump/shitsumon/internal/models"
	"github.com/hyperjump/shitsumon/internal/pipeline"
	"github.com/hyperjump/shitsumon/internal/tokenize"
	"github.com/hyperjump/shitsumon/pkg/utils"
)

var version = "dev"

// loadConfig loads config from path. With an empty path it looks for
// config.yaml in the current directory (for development); if that does not
// exist the built-in defaults are used. An explicit path that fails to load
// is an error.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
		return config.Default(), nil
	}
	return config.Load(path)
}

// readQueryLine prompts on w and reads one line from r, trimmed. Returns an
// empty string on EOF with no input.
func readQueryLine(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Query: ")
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// resolveCount returns the flag value when set, otherwise the config default.
func resolveCount(flagValue, configDefault int) int {
	if flagValue > 0 {
		return flagValue
	}
	return configDefault
}

func main() {
	configPath := flag.String("config", "", "config file path (default: ./config.yaml if present)")
	debug := flag.Bool("debug", false, "enable debug logging")
	queryText := flag.String("query", "", "question to answer (default: prompt on stdin)")
	fileMatches := flag.Int("files", 0, "number of top files to search for sentences")
	sentenceMatches := flag.Int("sentences", 0, "number of sentences to print")
	outputFormat := flag.String("output", "text", "output format: text or json")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("shitsumon version %s\n", version)
		return
	}
	if flag.NArg() != 1 {
		printUsage()
		os.Exit(2)
	}
	corpusDir := flag.Arg(0)

	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	tokenizer, err := tokenize.NewTokenizer(cfg.Tokenizer.ExtraStopwords...)
	if err != nil {
		logger.Fatal("Failed to build tokenizer", zap.Error(err))
	}
	loader := corpus.NewLoader(extract.NewExtractor(), cfg.Corpus.Extensions)
	engine := pipeline.NewEngine(loader, tokenizer, cfg.Ranking, pipeline.WithLogger(logger))

	text := *queryText
	if text == "" {
		text, err = readQueryLine(os.Stdin, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read query: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resp, err := engine.Answer(ctx, corpusDir, &models.Query{
		Text:            text,
		FileMatches:     resolveCount(*fileMatches, cfg.Ranking.FileMatches),
		SentenceMatches: resolveCount(*sentenceMatches, cfg.Ranking.SentenceMatches),
	})
	if err != nil {
		if errors.Is(err, corpus.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Corpus directory not found: %s\n", corpusDir)
		} else {
			fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		}
		os.Exit(1)
	}

	if err := cli.WriteAnswer(os.Stdout, resp, format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write answer: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `shitsumon - answer questions from a document corpus

Usage:
  shitsumon [flags] <corpus-dir>

Flags:
  -config string     config file path (default: ./config.yaml if present)
  -debug             enable debug logging
  -query string      question to answer (default: prompt on stdin)
  -files int         number of top files to search for sentences
  -sentences int     number of sentences to print
  -output string     output format: text or json (default "text")
  -version           print version and exit

Example:
  shitsumon -query "When was Python released?" ./corpus
`)
}
