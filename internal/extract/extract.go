// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract identifies candidate concept phrases within normalized
// transcript text. It works on one video at a time; merging across videos is
// the aggregate package's job.
package extract

import (
	"strings"

	"github.com/pdiddy/knowledge-map/pkg/types"
)

// genericWords are lemmatized tokens too generic to stand as concepts on
// their own: conversational nouns, common verbs, and sequencing words that
// survive stopword removal.
var genericWords = map[string]bool{
	"thing": true, "stuff": true, "way": true, "lot": true, "bit": true,
	"example": true, "time": true, "people": true, "person": true,
	"video": true, "guy": true, "today": true, "going": true, "want": true,
	"need": true, "make": true, "making": true, "look": true, "looking": true,
	"let": true, "say": true, "saying": true, "see": true, "use": true,
	"using": true, "get": true, "getting": true, "take": true, "taking": true,
	"come": true, "know": true, "think": true, "good": true, "great": true,
	"much": true, "many": true, "first": true, "last": true, "next": true,
	"new": true, "part": true, "course": true, "tutorial": true,
	"chapter": true, "section": true, "minute": true, "second": true,
	"hour": true, "day": true, "year": true, "number": true, "step": true,
	"point": true, "kind": true, "little": true, "big": true, "whole": true,
}

// Concepts parses one video's normalized text into an ordered sequence of
// concept mentions. Normalized text is lines of content-token runs as
// produced by textnorm.Normalize; each run is a candidate noun phrase
// (stopwords and punctuation already act as phrase boundaries).
//
// A run of up to MaxPhraseTokens tokens yields the whole-run phrase; every
// individual token longer than three characters yields a single-token
// mention. Candidates shorter than MinPhraseLen characters, numerals-only
// candidates, and generic single words are filtered. Mention offsets count
// content tokens from the start of the video and never decrease.
func Concepts(videoID, normalized string, cfg types.ExtractConfig) types.VideoConcepts {
	vc := types.VideoConcepts{VideoID: videoID}
	if normalized == "" {
		return vc
	}

	offset := 0
	for _, run := range strings.Split(normalized, "\n") {
		tokens := strings.Fields(run)
		if len(tokens) == 0 {
			continue
		}

		if len(tokens) >= 2 && len(tokens) <= cfg.MaxPhraseTokens {
			phrase := strings.Join(tokens, " ")
			if validPhrase(phrase, 2, cfg) {
				vc.Mentions = append(vc.Mentions, types.Mention{
					Canonical: phrase,
					Surface:   phrase,
					Offset:    offset,
				})
			}
		}

		for i, tok := range tokens {
			if len(tok) <= 3 {
				continue
			}
			if !validPhrase(tok, 1, cfg) {
				continue
			}
			vc.Mentions = append(vc.Mentions, types.Mention{
				Canonical: tok,
				Surface:   tok,
				Offset:    offset + i,
			})
		}

		offset += len(tokens)
	}

	return vc
}

// validPhrase applies the quality filters shared by phrase and single-token
// candidates.
func validPhrase(phrase string, tokenCount int, cfg types.ExtractConfig) bool {
	if len(phrase) < cfg.MinPhraseLen {
		return false
	}
	if numeralsOnly(phrase) {
		return false
	}
	if tokenCount == 1 && genericWords[phrase] {
		return false
	}
	return true
}

// numeralsOnly reports whether the phrase contains no letters.
func numeralsOnly(phrase string) bool {
	for _, r := range phrase {
		if r != ' ' && r != '-' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
