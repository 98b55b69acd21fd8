// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package order linearizes the raw concept graph into study levels: it
// detects and breaks cycles, assigns each concept a prerequisite level, and
// ranks concepts by importance within each level.
package order

import (
	"sort"

	"github.com/pdiddy/knowledge-map/pkg/types"
)

// edge is a working copy of a prerequisite edge during cycle breaking.
type edge struct {
	from, to string
	weight   float64
}

// Levels produces the ordered study-level partition of g's concept set.
// Cycles in the raw graph are broken by repeatedly removing the lowest-weight
// edge of a detected cycle (ties go to the lexically smallest (from, to)
// pair), then each concept's level is 1 + the maximum level of its direct
// prerequisites, with level 0 for concepts that have none. Within a level,
// concepts sort by descending importance, tie-broken by canonical form.
//
// Every concept appears in exactly one level. The input graph is not
// mutated. An empty concept set yields an empty sequence, never an error.
func Levels(g *types.ConceptGraph) []types.StudyLevel {
	if len(g.Concepts) == 0 {
		return nil
	}

	nodes := make([]string, 0, len(g.Concepts))
	for name := range g.Concepts {
		nodes = append(nodes, name)
	}
	sort.Strings(nodes)

	adj := workingCopy(g)

	for {
		cycle := findCycle(nodes, adj)
		if cycle == nil {
			break
		}
		removeEdge(adj, weakest(cycle))
	}

	level := assignLevels(nodes, adj)

	maxLevel := 0
	for _, l := range level {
		if l > maxLevel {
			maxLevel = l
		}
	}

	out := make([]types.StudyLevel, maxLevel+1)
	for i := range out {
		out[i].Level = i
	}
	for _, name := range nodes {
		l := level[name]
		out[l].Concepts = append(out[l].Concepts, *g.Concepts[name])
	}
	for i := range out {
		sort.Slice(out[i].Concepts, func(a, b int) bool {
			ca, cb := out[i].Concepts[a], out[i].Concepts[b]
			if ca.Importance != cb.Importance {
				return ca.Importance > cb.Importance
			}
			return ca.CanonicalForm < cb.CanonicalForm
		})
	}
	return out
}

// workingCopy builds a mutable adjacency map from the graph's edges, with
// neighbor lists sorted for deterministic traversal.
func workingCopy(g *types.ConceptGraph) map[string][]edge {
	adj := make(map[string][]edge, len(g.Adjacency))
	for from, edges := range g.Adjacency {
		for _, e := range edges {
			adj[from] = append(adj[from], edge{from: e.From, to: e.To, weight: e.Weight})
		}
		sort.Slice(adj[from], func(i, j int) bool {
			return adj[from][i].to < adj[from][j].to
		})
	}
	return adj
}

// findCycle runs a depth-first search tracking the recursion stack and
// returns the edges of the first cycle found, or nil if the graph is
// acyclic. Nodes are explored in sorted order so the same graph always
// yields the same cycle.
func findCycle(nodes []string, adj map[string][]edge) []edge {
	const (
		white = 0 // unvisited
		gray  = 1 // on the recursion stack
		black = 2 // fully explored
	)
	color := make(map[string]int, len(nodes))
	var stack []edge
	var cycle []edge

	var visit func(node string) bool
	visit = func(node string) bool {
		color[node] = gray
		for _, e := range adj[node] {
			switch color[e.to] {
			case white:
				stack = append(stack, e)
				if visit(e.to) {
					return true
				}
				stack = stack[:len(stack)-1]
			case gray:
				// Close the cycle: edges on the stack from e.to back to
				// node, plus the back edge itself.
				start := 0
				for i, se := range stack {
					if se.from == e.to {
						start = i
						break
					}
				}
				cycle = append(cycle, stack[start:]...)
				cycle = append(cycle, e)
				return true
			}
		}
		color[node] = black
		return false
	}

	for _, node := range nodes {
		if color[node] == white {
			stack = stack[:0]
			if visit(node) {
				return cycle
			}
		}
	}
	return nil
}

// weakest picks the cycle edge to remove: lowest weight, ties broken by
// lexical order of (from, to).
func weakest(cycle []edge) edge {
	best := cycle[0]
	for _, e := range cycle[1:] {
		if e.weight < best.weight {
			best = e
			continue
		}
		if e.weight == best.weight {
			if e.from < best.from || (e.from == best.from && e.to < best.to) {
				best = e
			}
		}
	}
	return best
}

// removeEdge deletes the edge from→to from the working adjacency.
func removeEdge(adj map[string][]edge, target edge) {
	edges := adj[target.from]
	for i, e := range edges {
		if e.to == target.to {
			adj[target.from] = append(edges[:i:i], edges[i+1:]...)
			return
		}
	}
}

// assignLevels computes each node's level over the now-acyclic adjacency:
// 0 for nodes with no incoming edges, otherwise 1 + the maximum level of
// direct prerequisites. Propagation runs in topological order via Kahn's
// algorithm with a sorted ready queue.
func assignLevels(nodes []string, adj map[string][]edge) map[string]int {
	indegree := make(map[string]int, len(nodes))
	for _, node := range nodes {
		indegree[node] = 0
	}
	for _, edges := range adj {
		for _, e := range edges {
			indegree[e.to]++
		}
	}

	level := make(map[string]int, len(nodes))
	var ready []string
	for _, node := range nodes {
		if indegree[node] == 0 {
			ready = append(ready, node)
		}
	}

	for len(ready) > 0 {
		sort.Strings(ready)
		node := ready[0]
		ready = ready[1:]
		for _, e := range adj[node] {
			if level[node]+1 > level[e.to] {
				level[e.to] = level[node] + 1
			}
			indegree[e.to]--
			if indegree[e.to] == 0 {
				ready = append(ready, e.to)
			}
		}
	}

	return level
}
