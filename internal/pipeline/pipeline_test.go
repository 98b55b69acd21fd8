// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/knowledge-map/pkg/types"
)

// calculusTranscripts is a small corpus where the derivative is introduced
// before the integral, with one dissenting video and one content-free one.
func calculusTranscripts() []types.Transcript {
	return []types.Transcript{
		{VideoID: "vidA", FullText: "We use the derivative. Then we use the integral. The derivative is key for the integral."},
		{VideoID: "vidB", FullText: "The integral is from the derivative."},
		{VideoID: "vidC", FullText: "um yeah okay right"},
	}
}

func TestRunEmptyInput(t *testing.T) {
	_, err := Run(nil, types.PipelineConfig{}, nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Run(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestRunOrdersDerivativeBeforeIntegral(t *testing.T) {
	res, err := Run(calculusTranscripts(), types.PipelineConfig{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.VideosProcessed != 2 {
		t.Errorf("VideosProcessed = %d, want 2", res.VideosProcessed)
	}
	if len(res.Graph.Concepts) != 2 {
		t.Fatalf("graph holds %d concepts, want 2: %v", len(res.Graph.Concepts), res.Graph.ConceptList())
	}

	if len(res.Levels) != 2 {
		t.Fatalf("got %d levels, want 2", len(res.Levels))
	}
	if got := res.Levels[0].Concepts[0].CanonicalForm; got != "derivative" {
		t.Errorf("level 0 concept = %q, want derivative", got)
	}
	if got := res.Levels[1].Concepts[0].CanonicalForm; got != "integral" {
		t.Errorf("level 1 concept = %q, want integral", got)
	}
}

func TestRunRawGraphMayKeepBothDirections(t *testing.T) {
	// The dissenting vidB keeps a weakened integral -> derivative edge in the
	// raw graph; only the level assignment breaks the cycle.
	res, err := Run(calculusTranscripts(), types.PipelineConfig{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	edges := res.Graph.Edges()
	if len(edges) != 2 {
		t.Fatalf("got %d raw edges, want 2: %+v", len(edges), edges)
	}
	if edges[0].From != "derivative" || edges[1].From != "integral" {
		t.Errorf("raw edges = %+v", edges)
	}
	if edges[0].Weight <= edges[1].Weight {
		t.Errorf("forward edge (%v) should outweigh the dissenting one (%v)",
			edges[0].Weight, edges[1].Weight)
	}
}

func TestRunFlagsLowSignalVideos(t *testing.T) {
	var out bytes.Buffer
	res, err := Run(calculusTranscripts(), types.PipelineConfig{}, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.LowSignal) != 1 || res.LowSignal[0] != "vidC" {
		t.Errorf("LowSignal = %v, want [vidC]", res.LowSignal)
	}
	if !strings.Contains(out.String(), "warning: low signal: vidC") {
		t.Errorf("progress output missing low-signal warning:\n%s", out.String())
	}
}

func TestRunAllVideosLowSignal(t *testing.T) {
	transcripts := []types.Transcript{
		{VideoID: "vidC", FullText: "um yeah okay right"},
	}

	res, err := Run(transcripts, types.PipelineConfig{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.VideosProcessed != 0 {
		t.Errorf("VideosProcessed = %d, want 0", res.VideosProcessed)
	}
	if len(res.Levels) != 0 {
		t.Errorf("Levels = %v, want none", res.Levels)
	}
	if len(res.LowSignal) != 1 {
		t.Errorf("LowSignal = %v, want [vidC]", res.LowSignal)
	}
}

func TestRunCapsConceptSet(t *testing.T) {
	cfg := types.PipelineConfig{}
	cfg.Graph.MaxConcepts = 1

	res, err := Run(calculusTranscripts(), cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Graph.Concepts) != 1 {
		t.Fatalf("graph holds %d concepts, want 1", len(res.Graph.Concepts))
	}
	if res.Graph.NumEdges() != 0 {
		t.Errorf("got %d edges, want 0 with a single concept", res.Graph.NumEdges())
	}
}

func TestRunCountsTokens(t *testing.T) {
	res, err := Run(calculusTranscripts(), types.PipelineConfig{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// vidA normalizes to 7 content tokens, vidB to 2, vidC to none.
	if res.TotalTokens != 9 {
		t.Errorf("TotalTokens = %d, want 9", res.TotalTokens)
	}
}

func TestRunDeterministic(t *testing.T) {
	render := func() string {
		res, err := Run(calculusTranscripts(), types.PipelineConfig{}, nil)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		var buf bytes.Buffer
		if err := WriteJSON(res, &buf); err != nil {
			t.Fatalf("WriteJSON: %v", err)
		}
		return buf.String()
	}

	first := render()
	for i := 0; i < 5; i++ {
		if got := render(); got != first {
			t.Fatalf("run %d export differs:\n%s\n---\n%s", i, got, first)
		}
	}
}
