// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notes generates structured study notes from a pipeline run via a
// Generative AI API. Notes are strictly optional: a missing credential or a
// failed API call degrades to "notes omitted" and never fails the run.
package notes

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/knowledge-map/pkg/types"
)

// Backend abstracts the Generative AI API so tests can supply a mock.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// excerptLimit bounds how much of each transcript enters the prompt.
const excerptLimit = 2000

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// Generate builds the study-notes prompt from the level ordering and
// transcript excerpts and sends it to the backend, retrying failed calls
// with exponential backoff.
func Generate(ctx context.Context, backend Backend, levels []types.StudyLevel, transcripts []types.Transcript, cfg types.NotesConfig) (string, error) {
	if len(levels) == 0 {
		return "", fmt.Errorf("no study levels to generate notes from")
	}

	prompt := BuildPrompt(levels, transcripts)

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		text, err := backend.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}

// BuildPrompt assembles the generation prompt: the concept hierarchy in
// prerequisite order, transcript excerpts, and the formatting instructions.
func BuildPrompt(levels []types.StudyLevel, transcripts []types.Transcript) string {
	var hierarchy []string
	for _, lvl := range levels {
		names := make([]string, len(lvl.Concepts))
		for i, c := range lvl.Concepts {
			names[i] = c.DisplayForm
		}
		hierarchy = append(hierarchy, fmt.Sprintf("**%s (Level %d):** %s",
			levelLabel(lvl.Level), lvl.Level, strings.Join(names, ", ")))
	}

	var excerpts []string
	for i, t := range transcripts {
		text := t.FullText
		if len(text) > excerptLimit {
			text = text[:excerptLimit]
		}
		excerpts = append(excerpts, fmt.Sprintf("--- Video %d (%s) ---\n%s", i+1, t.VideoID, text))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert educator. Transcripts from %d videos were analyzed and the key concepts organized by prerequisite level.\n\n", len(transcripts))
	b.WriteString("## Concept Hierarchy (Prerequisite Order)\n\n")
	b.WriteString(strings.Join(hierarchy, "\n"))
	b.WriteString("\n\n## Transcript Excerpts\n\n")
	b.WriteString(strings.Join(excerpts, "\n\n"))
	b.WriteString(`

## Your Task

Generate comprehensive, structured study notes based on the above:

1. Organize by prerequisite level, foundational concepts first
2. For each concept give a concise definition, why it matters, and a brief example where applicable
3. Show connections between concepts across levels
4. End with a summary of key takeaways
5. Use markdown formatting

Generate the notes now:`)
	return b.String()
}

// levelLabel names the first tiers for readability.
func levelLabel(level int) string {
	switch level {
	case 0:
		return "Foundational"
	case 1:
		return "Intermediate"
	case 2:
		return "Advanced"
	default:
		return fmt.Sprintf("Level %d", level)
	}
}

// Save writes the generated notes to path under a standard header and
// returns the absolute path.
func Save(notesText, path string) (string, error) {
	var b strings.Builder
	b.WriteString("# Knowledge Map — Study Notes\n\n")
	b.WriteString("*Generated from video transcript analysis*\n\n---\n\n")
	b.WriteString(notesText)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing notes: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
