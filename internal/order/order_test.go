// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package order

import (
	"reflect"
	"testing"

	"github.com/pdiddy/knowledge-map/pkg/types"
)

// buildGraph assembles a graph from node names and weighted edges given as
// from/to/weight triples.
func buildGraph(t *testing.T, nodes []string, edges []types.PrerequisiteEdge) *types.ConceptGraph {
	t.Helper()
	g := types.NewConceptGraph()
	for _, n := range nodes {
		g.AddConcept(&types.Concept{
			CanonicalForm: n,
			DisplayForm:   n,
			Frequency:     1,
			Importance:    1,
		})
	}
	for i := range edges {
		e := edges[i]
		if !g.AddEdge(&e) {
			t.Fatalf("AddEdge(%s -> %s) rejected", e.From, e.To)
		}
	}
	return g
}

// levelNames flattens the partition into per-level canonical form lists.
func levelNames(levels []types.StudyLevel) [][]string {
	var out [][]string
	for _, lvl := range levels {
		var names []string
		for _, c := range lvl.Concepts {
			names = append(names, c.CanonicalForm)
		}
		out = append(out, names)
	}
	return out
}

func TestLevelsChain(t *testing.T) {
	g := buildGraph(t,
		[]string{"alpha", "beta", "gamma"},
		[]types.PrerequisiteEdge{
			{From: "alpha", To: "beta", Weight: 1},
			{From: "beta", To: "gamma", Weight: 1},
		})

	got := levelNames(Levels(g))
	want := [][]string{{"alpha"}, {"beta"}, {"gamma"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("levels = %v, want %v", got, want)
	}
}

func TestLevelsDiamond(t *testing.T) {
	g := buildGraph(t,
		[]string{"alpha", "beta", "gamma", "delta"},
		[]types.PrerequisiteEdge{
			{From: "alpha", To: "beta", Weight: 1},
			{From: "alpha", To: "gamma", Weight: 1},
			{From: "beta", To: "delta", Weight: 1},
			{From: "gamma", To: "delta", Weight: 1},
		})

	got := levelNames(Levels(g))
	want := [][]string{{"alpha"}, {"beta", "gamma"}, {"delta"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("levels = %v, want %v", got, want)
	}
}

func TestLevelsIsolatedConceptIsFoundational(t *testing.T) {
	g := buildGraph(t,
		[]string{"alpha", "beta", "solo"},
		[]types.PrerequisiteEdge{{From: "alpha", To: "beta", Weight: 1}})

	got := levelNames(Levels(g))
	want := [][]string{{"alpha", "solo"}, {"beta"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("levels = %v, want %v", got, want)
	}
}

func TestLevelsBreaksCycleAtWeakestEdge(t *testing.T) {
	// The strong alpha -> beta edge survives; the weak back edge goes.
	g := buildGraph(t,
		[]string{"alpha", "beta"},
		[]types.PrerequisiteEdge{
			{From: "alpha", To: "beta", Weight: 1.0},
			{From: "beta", To: "alpha", Weight: 0.4},
		})

	got := levelNames(Levels(g))
	want := [][]string{{"alpha"}, {"beta"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("levels = %v, want %v", got, want)
	}
}

func TestLevelsBreaksThreeCycle(t *testing.T) {
	g := buildGraph(t,
		[]string{"alpha", "beta", "gamma"},
		[]types.PrerequisiteEdge{
			{From: "alpha", To: "beta", Weight: 2},
			{From: "beta", To: "gamma", Weight: 3},
			{From: "gamma", To: "alpha", Weight: 1},
		})

	got := levelNames(Levels(g))
	want := [][]string{{"alpha"}, {"beta"}, {"gamma"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("levels = %v, want %v", got, want)
	}
}

func TestLevelsCycleTieBreaksLexically(t *testing.T) {
	// Equal weights: the lexically smallest (from, to) edge is removed, so
	// alpha -> beta goes and beta precedes alpha.
	g := buildGraph(t,
		[]string{"alpha", "beta"},
		[]types.PrerequisiteEdge{
			{From: "alpha", To: "beta", Weight: 1},
			{From: "beta", To: "alpha", Weight: 1},
		})

	got := levelNames(Levels(g))
	want := [][]string{{"beta"}, {"alpha"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("levels = %v, want %v", got, want)
	}
}

func TestLevelsCoverEveryConceptOnce(t *testing.T) {
	nodes := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	g := buildGraph(t, nodes,
		[]types.PrerequisiteEdge{
			{From: "alpha", To: "beta", Weight: 2},
			{From: "beta", To: "gamma", Weight: 1.5},
			{From: "gamma", To: "alpha", Weight: 0.6}, // cycle
			{From: "beta", To: "delta", Weight: 1},
		})

	seen := make(map[string]int)
	for _, lvl := range Levels(g) {
		for _, c := range lvl.Concepts {
			seen[c.CanonicalForm]++
		}
	}
	for _, n := range nodes {
		if seen[n] != 1 {
			t.Errorf("concept %q appears %d times, want exactly 1", n, seen[n])
		}
	}
	if len(seen) != len(nodes) {
		t.Errorf("partition holds %d concepts, want %d", len(seen), len(nodes))
	}
}

func TestLevelsSortWithinLevelByImportance(t *testing.T) {
	g := types.NewConceptGraph()
	g.AddConcept(&types.Concept{CanonicalForm: "minor", Importance: 1})
	g.AddConcept(&types.Concept{CanonicalForm: "major", Importance: 9})
	g.AddConcept(&types.Concept{CanonicalForm: "middle", Importance: 4})

	levels := Levels(g)
	if len(levels) != 1 {
		t.Fatalf("got %d levels, want 1", len(levels))
	}
	got := levelNames(levels)[0]
	want := []string{"major", "middle", "minor"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("level order = %v, want %v", got, want)
	}
}

func TestLevelsEmptyGraph(t *testing.T) {
	if got := Levels(types.NewConceptGraph()); got != nil {
		t.Errorf("Levels(empty) = %v, want nil", got)
	}
}

func TestLevelsDeterministic(t *testing.T) {
	build := func() *types.ConceptGraph {
		return buildGraph(t,
			[]string{"alpha", "beta", "gamma", "delta"},
			[]types.PrerequisiteEdge{
				{From: "alpha", To: "beta", Weight: 1},
				{From: "beta", To: "gamma", Weight: 1},
				{From: "gamma", To: "beta", Weight: 1}, // tie cycle
				{From: "alpha", To: "delta", Weight: 1},
			})
	}

	first := Levels(build())
	for i := 0; i < 5; i++ {
		if got := Levels(build()); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs:\n got %v\nwant %v", i, levelNames(got), levelNames(first))
		}
	}
}

func TestLevelsDoesNotMutateInput(t *testing.T) {
	g := buildGraph(t,
		[]string{"alpha", "beta"},
		[]types.PrerequisiteEdge{
			{From: "alpha", To: "beta", Weight: 1},
			{From: "beta", To: "alpha", Weight: 0.4},
		})

	Levels(g)
	if g.NumEdges() != 2 {
		t.Errorf("input graph mutated: %d edges left, want 2", g.NumEdges())
	}
}
