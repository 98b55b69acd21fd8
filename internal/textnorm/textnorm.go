// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm cleans raw transcript text for concept extraction. It
// strips caption artifacts, folds case, removes stopwords and filler tokens,
// and lemmatizes the remaining tokens to dictionary base forms.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	bracketTagRE = regexp.MustCompile(`\[[^\]]*\]`)
	htmlEntityRE = regexp.MustCompile(`&#?\w+;`)
	htmlTagRE    = regexp.MustCompile(`<[^>]*>`)
	timestampRE  = regexp.MustCompile(`^[\d:.\-\s]+$`)
)

// unicodeReplacer folds curly quotes and long dashes to their ASCII forms.
var unicodeReplacer = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-",
)

// fillerPhrases are multiword transcript fillers removed before tokenizing.
// Single-word fillers live in the stopword set.
var fillerPhrases = []string{
	"you know", "sort of", "kind of", "i mean", "so yeah",
}

// Normalize cleans raw transcript text and returns the normalized form:
// lines of space-separated, lowercased, lemmatized content tokens. Each line
// is one contiguous run of content tokens; stopwords, fillers, and
// punctuation act as run boundaries. Empty or whitespace-only input yields
// the empty string; Normalize never fails on malformed text.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := Clean(raw)

	var runs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			runs = append(runs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, tok := range splitTokens(text) {
		if IsStopword(tok) {
			flush()
			continue
		}
		current = append(current, Lemma(tok))
	}
	flush()

	return strings.Join(runs, "\n")
}

// Clean strips caption artifacts from raw text: bracket tags like [Music],
// HTML entities and tags, timestamp-only lines, curly quotes and long dashes,
// and multiword filler phrases. The result is lowercased with collapsed
// whitespace. Word content is otherwise preserved.
func Clean(raw string) string {
	text := bracketTagRE.ReplaceAllString(raw, " ")
	text = htmlEntityRE.ReplaceAllString(text, " ")
	text = htmlTagRE.ReplaceAllString(text, " ")
	text = unicodeReplacer.Replace(text)
	text = strings.ToLower(text)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || timestampRE.MatchString(trimmed) {
			continue
		}
		lines = append(lines, trimmed)
	}
	text = strings.Join(lines, " ")

	for _, phrase := range fillerPhrases {
		text = strings.ReplaceAll(text, " "+phrase+" ", " . ")
	}

	return strings.Join(strings.Fields(text), " ")
}

// splitTokens breaks cleaned text into word tokens. Any rune that is not a
// letter, digit, apostrophe, or in-word hyphen ends the current token and is
// itself dropped, so punctuation becomes a run boundary via the empty token.
func splitTokens(text string) []string {
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, strings.Trim(b.String(), "'-"))
			b.Reset()
		}
		// The empty token is a run boundary downstream.
		tokens = append(tokens, "")
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			if b.Len() > 0 {
				tokens = append(tokens, strings.Trim(b.String(), "'-"))
				b.Reset()
			}
		default:
			flush()
		}
	}
	if b.Len() > 0 {
		tokens = append(tokens, strings.Trim(b.String(), "'-"))
	}
	return tokens
}
