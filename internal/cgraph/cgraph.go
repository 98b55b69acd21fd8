// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cgraph infers directed prerequisite edges over the aggregated
// concept set from co-occurrence order within each video's phrase sequence.
package cgraph

import (
	"sort"

	"github.com/pdiddy/knowledge-map/pkg/types"
)

// pairKey is an ordered concept pair.
type pairKey struct {
	from, to string
}

// Build constructs the raw concept graph. Within each video's ordered phrase
// sequence, every ordered pair of distinct concepts whose mentions fall
// within the look-ahead window proposes an edge from the earlier concept to
// the later one; closer mentions contribute more weight. Proposals for the
// same ordered pair merge across videos by summing weight and unioning
// evidence sources. Observations of the pair in the reverse order reduce the
// net weight, and edges below the minimum weight threshold are dropped.
//
// The result may still contain cycles (opposite edges can both survive when
// videos disagree); producing the acyclic view is the order package's job.
// Self-loops are never emitted.
func Build(concepts []*types.Concept, perVideo []types.VideoConcepts, cfg types.GraphConfig) *types.ConceptGraph {
	g := types.NewConceptGraph()
	for _, c := range concepts {
		g.AddConcept(c)
	}

	forward := make(map[pairKey]float64)
	evidence := make(map[pairKey]map[string]bool)

	for _, vc := range perVideo {
		seq := inGraph(vc.Mentions, g)
		for i := 0; i < len(seq); i++ {
			for j := i + 1; j < len(seq); j++ {
				dist := seq[j].Offset - seq[i].Offset
				if dist > cfg.WindowSize {
					break
				}
				if seq[i].Canonical == seq[j].Canonical {
					continue
				}
				key := pairKey{from: seq[i].Canonical, to: seq[j].Canonical}
				forward[key] += proximity(dist, cfg.WindowSize)
				if evidence[key] == nil {
					evidence[key] = make(map[string]bool)
				}
				evidence[key][vc.VideoID] = true
			}
		}
	}

	keys := make([]pairKey, 0, len(forward))
	for key := range forward {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})

	for _, key := range keys {
		// Reverse-order sightings are conflicting signal and cut into the
		// net confidence without necessarily killing the edge.
		net := forward[key] - 0.5*forward[pairKey{from: key.to, to: key.from}]
		if net < cfg.MinEdgeWeight {
			continue
		}
		sources := make([]string, 0, len(evidence[key]))
		for src := range evidence[key] {
			sources = append(sources, src)
		}
		sort.Strings(sources)
		g.AddEdge(&types.PrerequisiteEdge{
			From:            key.from,
			To:              key.to,
			Weight:          net,
			EvidenceSources: sources,
		})
	}

	return g
}

// proximity weights a co-occurrence by token distance: adjacent mentions
// score 1, mentions a full window apart score 0.5.
func proximity(dist, window int) float64 {
	return 1.0 / (1.0 + float64(dist)/float64(window))
}

// inGraph filters a mention sequence to concepts present in the graph,
// preserving order.
func inGraph(mentions []types.Mention, g *types.ConceptGraph) []types.Mention {
	var seq []types.Mention
	for _, m := range mentions {
		if _, ok := g.Concepts[m.Canonical]; ok {
			seq = append(seq, m)
		}
	}
	return seq
}
