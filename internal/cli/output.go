// Package cli renders query responses for the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperjump/shitsumon/internal/models"
)

// OutputFormat selects how a response is rendered.
type OutputFormat string

const (
	// FormatText prints each answer sentence on its own line.
	FormatText OutputFormat = "text"
	// FormatJSON prints the full response as indented JSON.
	FormatJSON OutputFormat = "json"
)

// ParseFormat validates a format name from a flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// WriteAnswer renders resp to w in the given format. Text format prints one
// sentence per line in rank order, matching the interactive question-answer
// flow; JSON carries the full response including scores.
func WriteAnswer(w io.Writer, resp *models.QueryResponse, format OutputFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	default:
		if len(resp.Sentences) == 0 {
			_, err := fmt.Fprintln(w, "No matching sentences found.")
			return err
		}
		for _, sent := range resp.Sentences {
			if _, err := fmt.Fprintln(w, sent.Text); err != nil {
				return err
			}
		}
		return nil
	}
}
