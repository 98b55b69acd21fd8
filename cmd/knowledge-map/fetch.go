// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/knowledge-map/internal/transcript"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [urls...]",
	Short: "Fetch transcripts into the cache without analyzing",
	Long: `Fetch retrieves and caches transcripts for the given video URLs so a
later map run can work offline. Videos without captions are skipped and
reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	addPipelineFlags(fetchCmd)

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := pipelineConfig(cmd)
	if cfg.Fetch.CacheDir == "" {
		cfg.Fetch.CacheDir = ".cache"
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
	fmt.Fprintf(os.Stdout, "\nfetched: %d, skipped: %d\n", len(fetched), len(skipped))

	if len(fetched) == 0 {
		return fmt.Errorf("no transcripts could be fetched")
	}
	return nil
}
