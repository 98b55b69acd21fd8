// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Position marks where a concept first appears within one video.
type Position struct {
	// VideoID identifies the source video.
	VideoID string `json:"video_id" yaml:"video_id"`

	// Offset is the content-token offset of the earliest mention.
	Offset int `json:"offset" yaml:"offset"`
}

// Concept is a canonicalized idea unit aggregated across all processed videos.
// CanonicalForm is unique within a pipeline run: surface forms that lemmatize
// identically merge into one Concept, summing frequency and unioning sources.
type Concept struct {
	// CanonicalForm is the lemmatized, normalized string identity.
	CanonicalForm string `json:"canonical_form" yaml:"canonical_form"`

	// DisplayForm is the most frequent observed surface variant.
	DisplayForm string `json:"display_form" yaml:"display_form"`

	// Frequency counts occurrences across all processed transcripts.
	Frequency int `json:"frequency" yaml:"frequency"`

	// Sources lists the contributing video ids, sorted.
	Sources []string `json:"sources" yaml:"sources"`

	// FirstPositions holds the earliest appearance per contributing video,
	// in video ingestion order.
	FirstPositions []Position `json:"first_positions" yaml:"first_positions"`

	// Importance scores the concept by frequency and source breadth.
	// Monotonically increasing in both.
	Importance float64 `json:"importance" yaml:"importance"`
}

// StudyLevel is one tier of the prerequisite ordering. Level 0 concepts have
// no unmet prerequisites; level k concepts depend only on levels < k.
// Concepts within a level are sorted by descending importance.
type StudyLevel struct {
	Level    int       `json:"level" yaml:"level"`
	Concepts []Concept `json:"concepts" yaml:"concepts"`
}
