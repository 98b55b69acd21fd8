// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/knowledge-map/pkg/types"
)

// Export is the serialized view of a run: concepts and edges as sorted
// slices so repeated runs over identical input marshal byte-identically.
type Export struct {
	Concepts []types.Concept          `json:"concepts" yaml:"concepts"`
	Edges    []types.PrerequisiteEdge `json:"edges" yaml:"edges"`
	Levels   []types.StudyLevel       `json:"levels" yaml:"levels"`
}

// NewExport flattens a run result into its serialized form.
func NewExport(res *Result) Export {
	exp := Export{Levels: res.Levels}
	for _, c := range res.Graph.ConceptList() {
		exp.Concepts = append(exp.Concepts, *c)
	}
	for _, e := range res.Graph.Edges() {
		exp.Edges = append(exp.Edges, *e)
	}
	return exp
}

// WriteYAML writes the run export to path.
func WriteYAML(res *Result, path string) error {
	data, err := yaml.Marshal(NewExport(res))
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON writes the run export to w as indented JSON.
func WriteJSON(res *Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExport(res))
}
