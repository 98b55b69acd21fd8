// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import "strings"

// irregularLemmas maps irregular plural nouns to their singular base forms.
// Entries mapping to themselves pin words the suffix rules would mangle.
var irregularLemmas = map[string]string{
	"children":   "child",
	"men":        "man",
	"women":      "woman",
	"feet":       "foot",
	"teeth":      "tooth",
	"mice":       "mouse",
	"matrices":   "matrix",
	"vertices":   "vertex",
	"indices":    "index",
	"analyses":   "analysis",
	"hypotheses": "hypothesis",
	"theses":     "thesis",
	"axes":       "axis",
	"criteria":   "criterion",
	"phenomena":  "phenomenon",
	"formulae":   "formula",
	"series":     "series",
	"species":    "species",
	"physics":    "physics",
	"mathematics": "mathematics",
	"statistics": "statistics",
	"calculus":   "calculus",
	"basis":      "basis",
	"data":       "data",
	"news":       "news",
}

// Lemma reduces a token to its dictionary base form. Only nominal inflection
// is collapsed (plural → singular): gerunds and participles are left intact
// since phrases like "machine learning" or "distributed system" are nominal
// as written. Tokens shorter than four runes pass through unchanged.
func Lemma(tok string) string {
	if base, ok := irregularLemmas[tok]; ok {
		return base
	}
	if len(tok) < 4 {
		return tok
	}

	switch {
	case strings.HasSuffix(tok, "ies") && len(tok) > 4:
		// studies → study, properties → property
		return tok[:len(tok)-3] + "y"
	case strings.HasSuffix(tok, "sses"):
		// classes → class
		return tok[:len(tok)-2]
	case strings.HasSuffix(tok, "xes") || strings.HasSuffix(tok, "zes") ||
		strings.HasSuffix(tok, "ches") || strings.HasSuffix(tok, "shes"):
		// boxes → box, matches → match
		return tok[:len(tok)-2]
	case strings.HasSuffix(tok, "ss") || strings.HasSuffix(tok, "us") ||
		strings.HasSuffix(tok, "is"):
		// class, calculus, analysis
		return tok
	case strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "'s"):
		// derivatives → derivative, integrals → integral
		return tok[:len(tok)-1]
	}
	return tok
}
