// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dashboard renders a pipeline run for the terminal: the knowledge
// map table in prerequisite order, a dependency tree grouped by level, and
// summary statistics. Rendering is read-only over the run result.
package dashboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/knowledge-map/internal/pipeline"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	levelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	conceptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Options controls rendering.
type Options struct {
	// Plain disables styling for non-terminal output.
	Plain bool
}

// Render writes the knowledge map, dependency tree, and stats to w.
func Render(res *pipeline.Result, opts Options, w io.Writer) {
	renderTable(res, opts, w)
	renderTree(res, opts, w)
	renderStats(res, opts, w)
}

// levelLabel names the first tiers of the ordering.
func levelLabel(level int) string {
	switch level {
	case 0:
		return "Foundation"
	case 1:
		return "Core"
	case 2:
		return "Intermediate"
	default:
		return fmt.Sprintf("Level %d", level)
	}
}

func renderTable(res *pipeline.Result, opts Options, w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, style(titleStyle, opts, "Knowledge Map — Prerequisite Order"))
	fmt.Fprintf(w, "%-16s  %-40s  %8s\n", "Level", "Concept", "Score")
	fmt.Fprintln(w, style(dimStyle, opts, strings.Repeat("-", 68)))

	for _, lvl := range res.Levels {
		for i, c := range lvl.Concepts {
			// Pad before styling so ANSI escapes do not skew the columns.
			label := ""
			if i == 0 {
				label = levelLabel(lvl.Level)
			}
			fmt.Fprintf(w, "%s  %s  %s\n",
				style(levelStyle, opts, fmt.Sprintf("%-16s", label)),
				style(conceptStyle, opts, fmt.Sprintf("%-40s", truncate(c.DisplayForm, 40))),
				style(scoreStyle, opts, fmt.Sprintf("%8.2f", c.Importance)))
		}
	}
}

func renderTree(res *pipeline.Result, opts Options, w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, style(titleStyle, opts, "Concept Dependency Tree"))
	for _, lvl := range res.Levels {
		fmt.Fprintf(w, "%s\n", style(levelStyle, opts, levelLabel(lvl.Level)))
		for i, c := range lvl.Concepts {
			branch := "├─"
			if i == len(lvl.Concepts)-1 {
				branch = "└─"
			}
			fmt.Fprintf(w, "  %s %s %s\n",
				style(dimStyle, opts, branch),
				style(conceptStyle, opts, c.DisplayForm),
				style(dimStyle, opts, fmt.Sprintf("(score: %.2f)", c.Importance)))
		}
	}
}

func renderStats(res *pipeline.Result, opts Options, w io.Writer) {
	total := 0
	for _, lvl := range res.Levels {
		total += len(lvl.Concepts)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, style(titleStyle, opts, "Summary"))
	fmt.Fprintf(w, "  Videos processed:    %d\n", res.VideosProcessed)
	fmt.Fprintf(w, "  Total concepts:      %d\n", total)
	fmt.Fprintf(w, "  Prerequisite edges:  %d\n", res.Graph.NumEdges())
	fmt.Fprintf(w, "  Prerequisite levels: %d\n", len(res.Levels))
	fmt.Fprintf(w, "  Tokens analyzed:     %d\n", res.TotalTokens)
	if len(res.LowSignal) > 0 {
		fmt.Fprintf(w, "  Low-signal videos:   %s\n", strings.Join(res.LowSignal, ", "))
	}
}

// style applies st unless plain mode is requested.
func style(st lipgloss.Style, opts Options, s string) string {
	if opts.Plain {
		return s
	}
	return st.Render(s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
