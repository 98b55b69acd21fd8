// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// PrerequisiteEdge is a directed relation meaning From should be understood
// before To. Edges are derived from co-occurrence signals, never hand-authored.
// Duplicate edges between the same ordered pair merge by summing weight.
type PrerequisiteEdge struct {
	// From is the prerequisite concept's canonical form.
	From string `json:"from" yaml:"from"`

	// To is the dependent concept's canonical form. Never equal to From.
	To string `json:"to" yaml:"to"`

	// Weight is the merged confidence of the relation.
	Weight float64 `json:"weight" yaml:"weight"`

	// EvidenceSources lists the video ids contributing this edge, sorted.
	EvidenceSources []string `json:"evidence_sources" yaml:"evidence_sources"`
}

// ConceptGraph is a directed graph over the aggregated concept set, held as
// an explicit adjacency structure: canonical form → outgoing edges. The raw
// graph built from heuristic signals may contain cycles; the ordering stage
// produces the acyclic view.
type ConceptGraph struct {
	// Concepts maps canonical form to the concept record.
	Concepts map[string]*Concept `json:"concepts" yaml:"concepts"`

	// Adjacency maps a concept's canonical form to its outgoing edges.
	Adjacency map[string][]*PrerequisiteEdge `json:"adjacency" yaml:"adjacency"`
}

// NewConceptGraph returns an empty graph.
func NewConceptGraph() *ConceptGraph {
	return &ConceptGraph{
		Concepts:  make(map[string]*Concept),
		Adjacency: make(map[string][]*PrerequisiteEdge),
	}
}

// AddConcept inserts a concept node. An existing node with the same canonical
// form is left unchanged.
func (g *ConceptGraph) AddConcept(c *Concept) {
	if _, ok := g.Concepts[c.CanonicalForm]; ok {
		return
	}
	g.Concepts[c.CanonicalForm] = c
}

// AddEdge inserts a directed edge. Self-loops are rejected, as are edges whose
// endpoints are not in the concept set. An existing edge between the same
// ordered pair absorbs the new one: weights sum and evidence sources union.
func (g *ConceptGraph) AddEdge(e *PrerequisiteEdge) bool {
	if e.From == e.To {
		return false
	}
	if _, ok := g.Concepts[e.From]; !ok {
		return false
	}
	if _, ok := g.Concepts[e.To]; !ok {
		return false
	}
	for _, existing := range g.Adjacency[e.From] {
		if existing.To == e.To {
			existing.Weight += e.Weight
			existing.EvidenceSources = unionSorted(existing.EvidenceSources, e.EvidenceSources)
			return true
		}
	}
	g.Adjacency[e.From] = append(g.Adjacency[e.From], e)
	return true
}

// ConceptList returns the concepts sorted by canonical form.
func (g *ConceptGraph) ConceptList() []*Concept {
	keys := make([]string, 0, len(g.Concepts))
	for k := range g.Concepts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Concept, len(keys))
	for i, k := range keys {
		out[i] = g.Concepts[k]
	}
	return out
}

// Edges returns all edges sorted by (From, To).
func (g *ConceptGraph) Edges() []*PrerequisiteEdge {
	var out []*PrerequisiteEdge
	for _, edges := range g.Adjacency {
		out = append(out, edges...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// NumEdges returns the total edge count.
func (g *ConceptGraph) NumEdges() int {
	n := 0
	for _, edges := range g.Adjacency {
		n += len(edges)
	}
	return n
}

// unionSorted merges two sorted-or-unsorted string sets into a sorted set.
func unionSorted(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		seen[s] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
