package textnorm

import (
	"strings"
	"testing"
)

func TestNormalizeEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  "},
		{"only stopwords", "the and of to a"},
		{"only brackets", "[Music] [Applause]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != "" {
				t.Errorf("Normalize(%q) = %q, want empty", tt.in, got)
			}
		})
	}
}

func TestNormalizeRuns(t *testing.T) {
	got := Normalize("The derivatives are [Music] important!")
	want := "derivative\nimportant"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeStopwordsAreBoundaries(t *testing.T) {
	// Stopwords split "machine learning" from "neural networks".
	got := Normalize("machine learning and also neural networks")
	want := "machine learning\nneural network"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizePunctuationIsBoundary(t *testing.T) {
	got := Normalize("gradient descent, backpropagation")
	if got != "gradient descent\nbackpropagation" {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestCleanStripsArtifacts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bracket tag", "hello [Applause] world", "hello world"},
		{"html tag", "some <b>bold</b> text", "some bold text"},
		{"html entity", "rock &amp; roll", "rock roll"},
		{"timestamp line", "intro\n12:34\noutro", "intro outro"},
		{"curly apostrophe", "don’t stop", "don't stop"},
		{"case folding", "Machine Learning", "machine learning"},
		{"filler phrase", "this is you know hard", "this is . hard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLemma(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"studies", "study"},
		{"classes", "class"},
		{"boxes", "box"},
		{"matches", "match"},
		{"matrices", "matrix"},
		{"vertices", "vertex"},
		{"analyses", "analysis"},
		{"derivatives", "derivative"},
		{"integrals", "integral"},
		{"users", "user"},
		{"calculus", "calculus"},
		{"analysis", "analysis"},
		{"class", "class"},
		{"series", "series"},
		{"data", "data"},
		{"machine", "machine"},
		{"learning", "learning"},
		{"gas", "gas"}, // too short for the -s rule
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Lemma(tt.in); got != tt.want {
				t.Errorf("Lemma(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsStopword(t *testing.T) {
	for _, w := range []string{"", "the", "and", "um", "gonna", "it's"} {
		if !IsStopword(w) {
			t.Errorf("IsStopword(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"derivative", "machine", "graph"} {
		if IsStopword(w) {
			t.Errorf("IsStopword(%q) = true, want false", w)
		}
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	in := "The Quick Brown Fox jumps over the lazy dog, twice. [Music]"
	first := Normalize(in)
	for i := 0; i < 5; i++ {
		if got := Normalize(in); got != first {
			t.Fatalf("Normalize not deterministic: %q vs %q", got, first)
		}
	}
	if strings.Contains(first, ",") {
		t.Errorf("Normalize left punctuation in %q", first)
	}
}
