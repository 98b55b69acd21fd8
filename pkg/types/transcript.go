// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the knowledge-map pipeline:
// fetched transcripts, extracted concept mentions, the concept graph, and the
// study-level ordering, plus per-stage configuration.
package types

import "time"

// Transcript holds the caption text fetched for a single video.
type Transcript struct {
	// VideoID is the 11-character video identifier.
	VideoID string `json:"video_id" yaml:"video_id"`

	// URL is the original URL the identifier was parsed from, when known.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Language is the caption language code (e.g. "en").
	Language string `json:"language" yaml:"language"`

	// FullText is the concatenated caption text.
	FullText string `json:"full_text" yaml:"full_text"`

	// FetchedAt records when the transcript was retrieved.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// Mention is one occurrence of a candidate concept phrase within a video's
// normalized token stream. Offsets count content tokens and increase
// monotonically with position in the source text.
type Mention struct {
	// Canonical is the lemmatized, normalized phrase key.
	Canonical string `json:"canonical" yaml:"canonical"`

	// Surface is the phrase as observed before canonical collapsing.
	Surface string `json:"surface" yaml:"surface"`

	// Offset is the content-token offset of the phrase's first token.
	Offset int `json:"offset" yaml:"offset"`
}

// VideoConcepts pairs a video with its extracted mentions, in source order.
type VideoConcepts struct {
	VideoID  string    `json:"video_id" yaml:"video_id"`
	Mentions []Mention `json:"mentions" yaml:"mentions"`
}
