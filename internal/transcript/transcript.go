// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript fetches video caption text. It provides the Source
// interface the pipeline consumes, an HTTP client for the YouTube timedtext
// endpoint, a SQLite-backed cache, and batch fetching with per-video failure
// tolerance.
package transcript

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/knowledge-map/internal/httputil"
	"github.com/pdiddy/knowledge-map/pkg/types"
)

// ErrUnavailable reports that a video has no retrievable transcript: no
// captions, private video, or a fetch failure. Callers skip the video and
// continue.
var ErrUnavailable = errors.New("transcript unavailable")

// Source fetches the transcript for a single video.
type Source interface {
	Fetch(ctx context.Context, videoID string) (types.Transcript, error)
}

// defaultBaseURL is the caption endpoint. Tests point this at a local server.
const defaultBaseURL = "https://video.google.com/timedtext"

// Client fetches transcripts over HTTP.
type Client struct {
	httpClient *http.Client
	cfg        types.FetchConfig

	// BaseURL is the timedtext endpoint. Overridden in tests.
	BaseURL string
}

// NewClient returns a transcript client configured per cfg.
func NewClient(cfg types.FetchConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		BaseURL:    defaultBaseURL,
	}
}

// timedtext mirrors the caption endpoint's XML response.
type timedtext struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Body  string `xml:",chardata"`
	} `xml:"text"`
}

// Fetch retrieves the caption track for videoID. Any failure mode (HTTP
// error, non-200 status, empty or unparsable caption body) wraps
// ErrUnavailable so callers can treat them uniformly.
func (c *Client) Fetch(ctx context.Context, videoID string) (types.Transcript, error) {
	u := fmt.Sprintf("%s?lang=%s&v=%s", c.BaseURL, url.QueryEscape(c.cfg.Language), url.QueryEscape(videoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("%s: %w: %v", videoID, ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("%s: %w: %v", videoID, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Transcript{}, fmt.Errorf("%s: %w: status %d", videoID, ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("%s: %w: %v", videoID, ErrUnavailable, err)
	}

	text, err := parseTimedtext(body)
	if err != nil || text == "" {
		return types.Transcript{}, fmt.Errorf("%s: %w: no caption track", videoID, ErrUnavailable)
	}

	return types.Transcript{
		VideoID:   videoID,
		Language:  c.cfg.Language,
		FullText:  text,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// parseTimedtext extracts the concatenated caption text from the XML body.
func parseTimedtext(body []byte) (string, error) {
	if len(body) == 0 {
		return "", errors.New("empty body")
	}
	var tt timedtext
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("parsing timedtext: %w", err)
	}
	parts := make([]string, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		s := strings.TrimSpace(html.UnescapeString(t.Body))
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " "), nil
}

// FetchBatch fetches transcripts for every id, printing per-video status to
// w. Unavailable videos are skipped and reported, never fatal: the returned
// slice holds the successes in input order and skipped lists the failures.
func FetchBatch(ctx context.Context, src Source, videoIDs []string, delay time.Duration, w io.Writer) (fetched []types.Transcript, skipped []string) {
	if w == nil {
		w = io.Discard
	}
	for i, id := range videoIDs {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}
		t, err := src.Fetch(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "skipped %s: %v\n", id, err)
			skipped = append(skipped, id)
			continue
		}
		fmt.Fprintf(w, "fetched %s (%d chars)\n", id, len(t.FullText))
		fetched = append(fetched, t)
	}
	return fetched, skipped
}
