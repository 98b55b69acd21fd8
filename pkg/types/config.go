package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "knowledge-map/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the transcript fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Language is the caption language to request (default "en").
	Language string `json:"language" yaml:"language"`

	// CacheDir is the directory holding the transcript cache database.
	// Empty disables caching.
	CacheDir string `json:"cache_dir,omitempty" yaml:"cache_dir,omitempty"`

	// FetchDelay is the pause between consecutive transcript fetches.
	// Zero disables the pause.
	FetchDelay time.Duration `json:"fetch_delay" yaml:"fetch_delay"`
}

// ExtractConfig holds settings for the concept extraction stage.
type ExtractConfig struct {
	// MinPhraseLen is the minimum character length of a retained phrase (default 3).
	MinPhraseLen int `json:"min_phrase_len" yaml:"min_phrase_len"`

	// MaxPhraseTokens is the maximum token count of a retained phrase (default 4).
	MaxPhraseTokens int `json:"max_phrase_tokens" yaml:"max_phrase_tokens"`
}

// GraphConfig holds settings for prerequisite edge inference and ordering.
type GraphConfig struct {
	// WindowSize is the look-ahead window, in content tokens, within which
	// co-occurrence counts as evidence of a prerequisite relation (default 8).
	WindowSize int `json:"window_size" yaml:"window_size"`

	// MinEdgeWeight is the minimum merged weight an edge needs to survive
	// thresholding (default 0.5).
	MinEdgeWeight float64 `json:"min_edge_weight" yaml:"min_edge_weight"`

	// MaxConcepts caps how many top-importance concepts enter the graph
	// (default 50). Negative disables the cap.
	MaxConcepts int `json:"max_concepts" yaml:"max_concepts"`
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// NotesConfig holds settings for the optional study-notes generation stage.
type NotesConfig struct {
	AIConfig `yaml:",inline"`

	// OutputFile is where generated notes are written (default "knowledge_notes.md").
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	Graph   GraphConfig   `json:"graph" yaml:"graph"`
	Notes   NotesConfig   `json:"notes" yaml:"notes"`
}

// WithDefaults returns a copy of cfg with zero values replaced by defaults.
func (c PipelineConfig) WithDefaults() PipelineConfig {
	if c.Fetch.Timeout <= 0 {
		c.Fetch.Timeout = 15 * time.Second
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "knowledge-map/0.1"
	}
	if c.Fetch.Language == "" {
		c.Fetch.Language = "en"
	}
	if c.Fetch.FetchDelay < 0 {
		c.Fetch.FetchDelay = 0
	}
	if c.Extract.MinPhraseLen <= 0 {
		c.Extract.MinPhraseLen = 3
	}
	if c.Extract.MaxPhraseTokens <= 0 {
		c.Extract.MaxPhraseTokens = 4
	}
	if c.Graph.WindowSize <= 0 {
		c.Graph.WindowSize = 8
	}
	if c.Graph.MinEdgeWeight <= 0 {
		c.Graph.MinEdgeWeight = 0.5
	}
	if c.Graph.MaxConcepts == 0 {
		c.Graph.MaxConcepts = 50
	} else if c.Graph.MaxConcepts < 0 {
		// Negative disables the cap.
		c.Graph.MaxConcepts = 0
	}
	if c.Notes.Model == "" {
		c.Notes.Model = "gemini-2.0-flash"
	}
	if c.Notes.MaxRetries <= 0 {
		c.Notes.MaxRetries = 3
	}
	if c.Notes.OutputFile == "" {
		c.Notes.OutputFile = "knowledge_notes.md"
	}
	return c
}
