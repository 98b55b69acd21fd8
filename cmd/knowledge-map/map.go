// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/knowledge-map/internal/dashboard"
	"github.com/pdiddy/knowledge-map/internal/notes"
	"github.com/pdiddy/knowledge-map/internal/pipeline"
	"github.com/pdiddy/knowledge-map/internal/secrets"
	"github.com/pdiddy/knowledge-map/internal/transcript"
	"github.com/pdiddy/knowledge-map/pkg/types"
)

var mapCmd = &cobra.Command{
	Use:   "map [urls...]",
	Short: "Run the full pipeline: fetch, extract, order, display",
	Long: `Map fetches transcripts for the given video URLs, extracts concepts,
builds the prerequisite graph, and prints the study order. Videos without
captions are skipped and reported; the run fails only when no transcript
could be fetched at all.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMap,
}

func init() {
	addPipelineFlags(mapCmd)
	mapCmd.Flags().Int("window", 8, "look-ahead window in content tokens for edge inference")
	mapCmd.Flags().Float64("min-edge-weight", 0.5, "minimum merged weight for an edge to survive")
	mapCmd.Flags().Int("max-concepts", 50, "cap on top-importance concepts entering the graph (negative disables)")
	mapCmd.Flags().Bool("json", false, "output the graph and levels as JSON")
	mapCmd.Flags().Bool("plain", false, "disable styled output")
	mapCmd.Flags().String("out", "", "write the graph and levels to a YAML file")
	mapCmd.Flags().Bool("notes", false, "generate study notes via the Gemini API")
	mapCmd.Flags().String("notes-file", "knowledge_notes.md", "output file for generated notes")
	mapCmd.Flags().String("model", "", "AI model identifier for notes generation")

	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := pipelineConfig(cmd)

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

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		if err := pipeline.WriteJSON(res, os.Stdout); err != nil {
			return err
		}
	} else {
		plain, _ := cmd.Flags().GetBool("plain")
		dashboard.Render(res, dashboard.Options{Plain: plain}, os.Stdout)
	}

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := pipeline.WriteYAML(res, outPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	}

	if wantNotes, _ := cmd.Flags().GetBool("notes"); wantNotes {
		generateNotes(ctx, cfg, res, fetched)
	}

	return nil
}

// newSource builds the transcript source, wrapping it with the read-through
// cache when a cache directory is configured. The returned func closes the
// cache and is always safe to call.
func newSource(cfg types.PipelineConfig) (transcript.Source, func(), error) {
	client := transcript.NewClient(cfg.Fetch)
	if cfg.Fetch.CacheDir == "" {
		return client, func() {}, nil
	}
	cache, err := transcript.OpenCache(cfg.Fetch.CacheDir)
	if err != nil {
		return nil, nil, err
	}
	cached := transcript.NewCachedSource(client, cache, cfg.Fetch.Language, os.Stdout)
	return cached, func() { cache.Close() }, nil
}

// generateNotes runs the optional notes stage. Every failure mode degrades
// to a warning: a missing credential or API error never fails the run.
func generateNotes(ctx context.Context, cfg types.PipelineConfig, res *pipeline.Result, fetched []types.Transcript) {
	key := secretDefault(secrets.GeminiAPIKey, cfg.Notes.APIKey)
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		fmt.Fprintln(os.Stderr, "notes skipped: no Gemini API key configured")
		return
	}

	aiCfg := cfg.Notes.AIConfig
	aiCfg.APIKey = key
	backend := notes.NewGeminiBackend(aiCfg)

	text, err := notes.Generate(ctx, backend, res.Levels, fetched, cfg.Notes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: notes omitted: %v\n", err)
		return
	}

	path, err := notes.Save(text, cfg.Notes.OutputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: notes omitted: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Notes saved to %s\n", path)
}
