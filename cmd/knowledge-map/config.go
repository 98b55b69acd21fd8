// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/knowledge-map/pkg/types"
)

// pipelineConfig assembles the stage configuration from the config file,
// environment, and command flags. Flags win when set; zero values fall back
// to the built-in defaults.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("fetch.timeout"),
				UserAgent: viper.GetString("fetch.user_agent"),
			},
			Language:   viper.GetString("fetch.language"),
			CacheDir:   viper.GetString("fetch.cache_dir"),
			FetchDelay: viper.GetDuration("fetch.fetch_delay"),
		},
		Extract: types.ExtractConfig{
			MinPhraseLen:    viper.GetInt("extract.min_phrase_len"),
			MaxPhraseTokens: viper.GetInt("extract.max_phrase_tokens"),
		},
		Graph: types.GraphConfig{
			WindowSize:    viper.GetInt("graph.window_size"),
			MinEdgeWeight: viper.GetFloat64("graph.min_edge_weight"),
			MaxConcepts:   viper.GetInt("graph.max_concepts"),
		},
		Notes: types.NotesConfig{
			AIConfig: types.AIConfig{
				Model:      viper.GetString("notes.model"),
				APIKey:     viper.GetString("notes.api_key"),
				MaxRetries: viper.GetInt("notes.max_retries"),
			},
			OutputFile: viper.GetString("notes.output_file"),
		},
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Fetch.Language, _ = flags.GetString("lang")
	}
	if flags.Changed("cache-dir") {
		cfg.Fetch.CacheDir, _ = flags.GetString("cache-dir")
	}
	if flags.Changed("timeout") {
		var d time.Duration
		d, _ = flags.GetDuration("timeout")
		cfg.Fetch.Timeout = d
	}
	if flags.Changed("window") {
		cfg.Graph.WindowSize, _ = flags.GetInt("window")
	}
	if flags.Changed("min-edge-weight") {
		cfg.Graph.MinEdgeWeight, _ = flags.GetFloat64("min-edge-weight")
	}
	if flags.Changed("max-concepts") {
		cfg.Graph.MaxConcepts, _ = flags.GetInt("max-concepts")
	}
	if flags.Changed("model") {
		cfg.Notes.Model, _ = flags.GetString("model")
	}
	if flags.Changed("notes-file") {
		cfg.Notes.OutputFile, _ = flags.GetString("notes-file")
	}

	return cfg.WithDefaults()
}

// addPipelineFlags registers the flags shared by map and fetch.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("lang", "en", "caption language code")
	cmd.Flags().String("cache-dir", "", "transcript cache directory (empty disables caching)")
	cmd.Flags().Duration("timeout", 15*time.Second, "HTTP request timeout")
}
