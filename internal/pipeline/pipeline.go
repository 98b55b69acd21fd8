// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the full transcript-analysis run: normalization,
// concept extraction, aggregation, graph construction, and prerequisite
// ordering. It is the single entry point consumed by the CLI and the
// optional notes generator.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/knowledge-map/internal/aggregate"
	"github.com/pdiddy/knowledge-map/internal/cgraph"
	"github.com/pdiddy/knowledge-map/internal/extract"
	"github.com/pdiddy/knowledge-map/internal/order"
	"github.com/pdiddy/knowledge-map/internal/textnorm"
	"github.com/pdiddy/knowledge-map/pkg/types"
)

// ErrEmptyInput reports that no usable transcripts were supplied. It is the
// only fatal condition for a run: per-video problems degrade to warnings.
var ErrEmptyInput = errors.New("no usable transcripts")

// Result holds the outputs of one pipeline run. All structures belong
// exclusively to that run and are never mutated afterwards.
type Result struct {
	// Graph is the raw concept graph over the top concepts.
	Graph *types.ConceptGraph

	// Levels is the acyclic study-level ordering of the graph's concepts.
	Levels []types.StudyLevel

	// LowSignal lists video ids that yielded zero extracted concepts.
	// Not an error: those videos simply contribute nothing.
	LowSignal []string

	// VideosProcessed counts transcripts that contributed concepts.
	VideosProcessed int

	// TotalTokens counts content tokens analyzed across all transcripts.
	TotalTokens int
}

// Run executes the full pipeline over the supplied transcripts, in order.
// Transcript order is significant: it fixes first-position provenance and
// therefore the deterministic output. Re-running with identical input
// produces an identical graph and ordering.
//
// A transcript that normalizes or extracts to nothing is flagged on w and in
// Result.LowSignal but never aborts the batch. Run fails only when the
// transcript slice itself is empty.
func Run(transcripts []types.Transcript, cfg types.PipelineConfig, w io.Writer) (*Result, error) {
	if w == nil {
		w = io.Discard
	}
	cfg = cfg.WithDefaults()

	if len(transcripts) == 0 {
		return nil, ErrEmptyInput
	}

	res := &Result{}
	var perVideo []types.VideoConcepts

	for _, t := range transcripts {
		normalized := textnorm.Normalize(t.FullText)
		res.TotalTokens += len(strings.Fields(normalized))

		vc := extract.Concepts(t.VideoID, normalized, cfg.Extract)
		if len(vc.Mentions) == 0 {
			fmt.Fprintf(w, "warning: low signal: %s yielded no concepts\n", t.VideoID)
			res.LowSignal = append(res.LowSignal, t.VideoID)
			continue
		}

		fmt.Fprintf(w, "extracted %s (%d mentions)\n", t.VideoID, len(vc.Mentions))
		perVideo = append(perVideo, vc)
		res.VideosProcessed++
	}

	concepts := aggregate.Merge(perVideo)
	if cfg.Graph.MaxConcepts > 0 && len(concepts) > cfg.Graph.MaxConcepts {
		concepts = concepts[:cfg.Graph.MaxConcepts]
	}

	res.Graph = cgraph.Build(concepts, perVideo, cfg.Graph)
	res.Levels = order.Levels(res.Graph)

	fmt.Fprintf(w, "graph: %d concepts, %d edges, %d levels\n",
		len(res.Graph.Concepts), res.Graph.NumEdges(), len(res.Levels))

	return res, nil
}
