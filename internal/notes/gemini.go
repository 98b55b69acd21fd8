// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/knowledge-map/internal/httputil"
	"github.com/pdiddy/knowledge-map/pkg/types"
)

// defaultGeminiBaseURL is the Generative Language API root. Tests point this
// at a local server.
const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiBackend calls the Gemini generateContent endpoint.
type GeminiBackend struct {
	httpClient *http.Client
	cfg        types.AIConfig

	// BaseURL is the API root. Overridden in tests.
	BaseURL string
}

// NewGeminiBackend returns a backend for the configured model and key.
func NewGeminiBackend(cfg types.AIConfig) *GeminiBackend {
	return &GeminiBackend{
		httpClient: &http.Client{},
		cfg:        cfg,
		BaseURL:    defaultGeminiBaseURL,
	}
}

// generateRequest mirrors the generateContent request body.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse mirrors the fields of the response we consume.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt and returns the first candidate's text.
func (b *GeminiBackend) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", b.BaseURL, b.cfg.Model, b.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httputil.DoWithRetry(ctx, b.httpClient, req, b.cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("calling generate API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if gr.Error != nil && gr.Error.Message != "" {
			msg = gr.Error.Message
		}
		return "", fmt.Errorf("generate API: %s", msg)
	}
	if len(gr.Candidates) == 0 {
		return "", fmt.Errorf("generate API returned no candidates")
	}

	var parts []string
	for _, p := range gr.Candidates[0].Content.Parts {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, ""), nil
}
