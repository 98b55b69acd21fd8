// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Keep backoff waits out of the test run.
	RetryBaseDelay = time.Millisecond
}

func newCountingServer(t *testing.T, handler func(attempt int32, w http.ResponseWriter)) (*httptest.Server, *int32) {
	t.Helper()
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler(atomic.AddInt32(&attempts, 1), w)
	}))
	t.Cleanup(server.Close)
	return server, &attempts
}

func TestDoWithRetrySucceedsFirstTry(t *testing.T) {
	server, attempts := newCountingServer(t, func(attempt int32, w http.ResponseWriter) {
		w.WriteHeader(http.StatusOK)
	})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := DoWithRetry(context.Background(), server.Client(), req, 3)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(attempts))
}

func TestDoWithRetryRecoversFromTransientErrors(t *testing.T) {
	server, attempts := newCountingServer(t, func(attempt int32, w http.ResponseWriter) {
		if attempt < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := DoWithRetry(context.Background(), server.Client(), req, 5)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(attempts))
}

func TestDoWithRetryExhaustsRetries(t *testing.T) {
	server, attempts := newCountingServer(t, func(attempt int32, w http.ResponseWriter) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := DoWithRetry(context.Background(), server.Client(), req, 2)
	require.NoError(t, err)
	defer resp.Body.Close()

	// The last response comes back for the caller to inspect.
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(attempts))
}

func TestDoWithRetryDoesNotRetryClientErrors(t *testing.T) {
	server, attempts := newCountingServer(t, func(attempt int32, w http.ResponseWriter) {
		w.WriteHeader(http.StatusNotFound)
	})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := DoWithRetry(context.Background(), server.Client(), req, 3)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(attempts))
}

func TestDoWithRetryHonorsContextDuringBackoff(t *testing.T) {
	old := RetryBaseDelay
	RetryBaseDelay = time.Minute
	defer func() { RetryBaseDelay = old }()

	server, _ := newCountingServer(t, func(attempt int32, w http.ResponseWriter) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = DoWithRetry(ctx, server.Client(), req, 3)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
