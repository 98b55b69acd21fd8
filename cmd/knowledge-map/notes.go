// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/knowledge-map/internal/notes"
	"github.com/pdiddy/knowledge-map/internal/pipeline"
	"github.com/pdiddy/knowledge-map/internal/secrets"
	"github.com/pdiddy/knowledge-map/internal/transcript"
)

var notesCmd = &cobra.Command{
	Use:   "notes [urls...]",
	Short: "Run the pipeline and generate study notes",
	Long: `Notes runs the full analysis pipeline for the given video URLs and
generates structured study notes through the Gemini API. Unlike map --notes,
a missing credential or API failure here is an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNotes,
}

func init() {
	addPipelineFlags(notesCmd)
	notesCmd.Flags().String("notes-file", "knowledge_notes.md", "output file for generated notes")
	notesCmd.Flags().String("model", "", "AI model identifier for notes generation")

	rootCmd.AddCommand(notesCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := pipelineConfig(cmd)

	key := secretDefault(secrets.GeminiAPIKey, cfg.Notes.APIKey)
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("no Gemini API key: set notes.api_key, .secrets/%s, or GEMINI_API_KEY", secrets.GeminiAPIKey)
	}

	ids, bad := transcript.ParseVideoIDs(args)
	for _, b := range bad {
		fmt.Fprintf(os.Stderr, "warning: could not parse URL: %s\n", b)
	}
	if len(ids) == 0 {
		return fmt.Errorf("no valid video URLs given")
	}

	src, closeCache, err := newSource(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	fetched, skipped := transcript.FetchBatch(ctx, src, ids, cfg.Fetch.FetchDelay, os.Stdout)
	if len(skipped) > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d video(s) skipped: %s\n",
			len(skipped), strings.Join(skipped, ", "))
	}

	res, err := pipeline.Run(fetched, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if len(res.Levels) == 0 {
		return fmt.Errorf("no concepts extracted, nothing to write notes about")
	}

	aiCfg := cfg.Notes.AIConfig
	aiCfg.APIKey = key
	backend := notes.NewGeminiBackend(aiCfg)

	text, err := notes.Generate(ctx, backend, res.Levels, fetched, cfg.Notes)
	if err != nil {
		return err
	}

	path, err := notes.Save(text, cfg.Notes.OutputFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Notes saved to %s\n", path)
	return nil
}
