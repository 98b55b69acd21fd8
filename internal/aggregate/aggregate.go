// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate merges per-video concept mentions into one deduplicated
// concept set with frequency, provenance, and importance scores.
package aggregate

import (
	"sort"

	"github.com/pdiddy/knowledge-map/pkg/types"
)

// accumulator collects per-canonical-form statistics while scanning videos.
type accumulator struct {
	frequency int
	surfaces  map[string]int
	sources   map[string]bool
	// firstPositions in video ingestion order; one entry per contributing video.
	firstPositions []types.Position
}

// Merge groups all extracted mentions by canonical form across videos and
// builds one Concept per group. Frequency sums every occurrence, sources
// union the contributing video ids, the display form is the most frequent
// surface variant (ties broken lexically), and first positions record the
// earliest offset per video in ingestion order.
//
// The result is sorted by descending importance, tie-broken by descending
// frequency and then canonical form, so callers can cap to the top N
// deterministically.
func Merge(perVideo []types.VideoConcepts) []*types.Concept {
	accs := make(map[string]*accumulator)

	for _, vc := range perVideo {
		seenInVideo := make(map[string]bool)
		for _, m := range vc.Mentions {
			acc, ok := accs[m.Canonical]
			if !ok {
				acc = &accumulator{
					surfaces: make(map[string]int),
					sources:  make(map[string]bool),
				}
				accs[m.Canonical] = acc
			}
			acc.frequency++
			acc.surfaces[m.Surface]++
			acc.sources[vc.VideoID] = true
			if !seenInVideo[m.Canonical] {
				seenInVideo[m.Canonical] = true
				acc.firstPositions = append(acc.firstPositions, types.Position{
					VideoID: vc.VideoID,
					Offset:  m.Offset,
				})
			}
		}
	}

	concepts := make([]*types.Concept, 0, len(accs))
	for canonical, acc := range accs {
		sources := make([]string, 0, len(acc.sources))
		for src := range acc.sources {
			sources = append(sources, src)
		}
		sort.Strings(sources)

		concepts = append(concepts, &types.Concept{
			CanonicalForm:  canonical,
			DisplayForm:    topSurface(acc.surfaces),
			Frequency:      acc.frequency,
			Sources:        sources,
			FirstPositions: acc.firstPositions,
			Importance:     Importance(acc.frequency, len(sources)),
		})
	}

	sort.Slice(concepts, func(i, j int) bool {
		if concepts[i].Importance != concepts[j].Importance {
			return concepts[i].Importance > concepts[j].Importance
		}
		if concepts[i].Frequency != concepts[j].Frequency {
			return concepts[i].Frequency > concepts[j].Frequency
		}
		return concepts[i].CanonicalForm < concepts[j].CanonicalForm
	})

	return concepts
}

// Importance scores a concept from its total frequency and source breadth.
// Monotonically increasing in both; appearing in more videos boosts the
// score beyond raw repetition within one.
func Importance(frequency, breadth int) float64 {
	if breadth < 1 {
		breadth = 1
	}
	return float64(frequency) * (1.0 + 0.5*float64(breadth-1))
}

// topSurface picks the most frequent surface variant; ties go to the
// lexically smaller form for determinism.
func topSurface(surfaces map[string]int) string {
	best := ""
	bestCount := -1
	for s, n := range surfaces {
		if n > bestCount || (n == bestCount && s < best) {
			best = s
			bestCount = n
		}
	}
	return best
}
