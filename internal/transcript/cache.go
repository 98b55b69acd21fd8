// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/knowledge-map/pkg/types"
)

const cacheDBFile = "transcripts.db"

// Cache is a SQLite-backed transcript cache keyed by video id. It sits at
// the fetch edge only: the analysis pipeline itself keeps no state across
// runs.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the cache database under dir, creating the
// schema if needed.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, cacheDBFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS transcripts (
		video_id TEXT PRIMARY KEY,
		url TEXT,
		language TEXT NOT NULL,
		full_text TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get looks up a cached transcript. The second return value reports whether
// the video id was present.
func (c *Cache) Get(ctx context.Context, videoID, language string) (types.Transcript, bool, error) {
	var t types.Transcript
	var fetchedAt string
	err := c.db.QueryRowContext(ctx,
		`SELECT video_id, url, language, full_text, fetched_at
		 FROM transcripts WHERE video_id = ? AND language = ?`,
		videoID, language,
	).Scan(&t.VideoID, &t.URL, &t.Language, &t.FullText, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Transcript{}, false, nil
	}
	if err != nil {
		return types.Transcript{}, false, fmt.Errorf("querying cache for %s: %w", videoID, err)
	}
	if ts, perr := time.Parse(time.RFC3339Nano, fetchedAt); perr == nil {
		t.FetchedAt = ts
	}
	return t, true, nil
}

// Put stores or replaces a transcript.
func (c *Cache) Put(ctx context.Context, t types.Transcript) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO transcripts (video_id, url, language, full_text, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(video_id) DO UPDATE SET
			url=excluded.url, language=excluded.language,
			full_text=excluded.full_text, fetched_at=excluded.fetched_at`,
		t.VideoID, t.URL, t.Language, t.FullText,
		t.FetchedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("caching transcript %s: %w", t.VideoID, err)
	}
	return nil
}

// Count returns the number of cached transcripts.
func (c *Cache) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM transcripts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cache entries: %w", err)
	}
	return n, nil
}

// CachedSource wraps a Source with read-through caching. Cache read or write
// problems degrade to warnings on w; the underlying source still answers.
type CachedSource struct {
	src   Source
	cache *Cache
	lang  string
	w     io.Writer
}

// NewCachedSource builds a read-through cached source. w may be nil.
func NewCachedSource(src Source, cache *Cache, language string, w io.Writer) *CachedSource {
	if w == nil {
		w = io.Discard
	}
	return &CachedSource{src: src, cache: cache, lang: language, w: w}
}

// Fetch returns the cached transcript when present, otherwise fetches from
// the underlying source and stores the result.
func (s *CachedSource) Fetch(ctx context.Context, videoID string) (types.Transcript, error) {
	t, ok, err := s.cache.Get(ctx, videoID, s.lang)
	if err != nil {
		fmt.Fprintf(s.w, "warning: cache read failed for %s: %v\n", videoID, err)
	} else if ok {
		fmt.Fprintf(s.w, "cached  %s\n", videoID)
		return t, nil
	}

	t, err = s.src.Fetch(ctx, videoID)
	if err != nil {
		return types.Transcript{}, err
	}
	if err := s.cache.Put(ctx, t); err != nil {
		fmt.Fprintf(s.w, "warning: cache write failed for %s: %v\n", videoID, err)
	}
	return t, nil
}
