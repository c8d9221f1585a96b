package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mkarpekin/go-notes-keeper/internal/config"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newRateLimitedHandler(t *testing.T, limit int, window time.Duration) *Handler {
	t.Helper()
	limiter := store.NewMemoryRateLimiter()
	t.Cleanup(func() { _ = limiter.Close() })

	return &Handler{
		logger:   logger.Nop(),
		storages: &store.Storages{RateLimiter: limiter},
		cfg: config.StructuredConfig{
			Server: config.Server{AuthRateLimit: limit, AuthRateWindow: window},
		},
	}
}

func executeRateLimited(h *Handler, remoteAddr string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.withRateLimit(next)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
	req = injectNopLogger(req)
	req.RemoteAddr = remoteAddr
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- Limit enforcement ----

func TestWithRateLimit_BlocksAfterLimit(t *testing.T) {
	h := newRateLimitedHandler(t, 2, time.Minute)

	first := executeRateLimited(h, "10.0.0.1:1111")
	second := executeRateLimited(h, "10.0.0.1:2222")
	third := executeRateLimited(h, "10.0.0.1:3333")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), "rate limit exceeded")
}

// TestWithRateLimit_PortIgnored verifies that requests from the same host but
// different source ports share one bucket.
func TestWithRateLimit_PortIgnored(t *testing.T) {
	h := newRateLimitedHandler(t, 1, time.Minute)

	first := executeRateLimited(h, "10.0.0.7:40000")
	second := executeRateLimited(h, "10.0.0.7:40001")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

// TestWithRateLimit_IndependentClients verifies that distinct client IPs have
// independent budgets.
func TestWithRateLimit_IndependentClients(t *testing.T) {
	h := newRateLimitedHandler(t, 1, time.Minute)

	first := executeRateLimited(h, "10.0.0.1:1111")
	blocked := executeRateLimited(h, "10.0.0.1:1111")
	other := executeRateLimited(h, "10.0.0.2:1111")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, http.StatusOK, other.Code)
}

// ---- Response headers ----

func TestWithRateLimit_Headers(t *testing.T) {
	h := newRateLimitedHandler(t, 2, time.Minute)

	first := executeRateLimited(h, "10.0.0.3:1111")
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, first.Header().Get("X-RateLimit-Reset"))

	second := executeRateLimited(h, "10.0.0.3:1111")
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := executeRateLimited(h, "10.0.0.3:1111")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("X-RateLimit-Remaining"))
}

// ---- Disabled limiter ----

// TestWithRateLimit_ZeroLimitDisables verifies that a non-positive limit turns
// the middleware into a pass-through.
func TestWithRateLimit_ZeroLimitDisables(t *testing.T) {
	h := newRateLimitedHandler(t, 0, time.Minute)

	for i := 0; i < 20; i++ {
		rr := executeRateLimited(h, "10.0.0.4:1111")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
	}
}

// TestWithRateLimit_NoLimiterPassesThrough verifies that a handler without a
// wired limiter never blocks. Endpoint unit tests rely on this.
func TestWithRateLimit_NoLimiterPassesThrough(t *testing.T) {
	h := &Handler{
		logger: logger.Nop(),
		cfg: config.StructuredConfig{
			Server: config.Server{AuthRateLimit: 1, AuthRateWindow: time.Minute},
		},
	}

	for i := 0; i < 5; i++ {
		rr := executeRateLimited(h, "10.0.0.5:1111")
		require.Equal(t, http.StatusOK, rr.Code)
	}
}

// ---- Key derivation ----

func TestRateLimitKeyIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{name: "host and port", remoteAddr: "192.168.1.10:54321", want: "ip:192.168.1.10"},
		{name: "ipv6 with port", remoteAddr: "[2001:db8::1]:443", want: "ip:2001:db8::1"},
		{name: "no port", remoteAddr: "192.168.1.10", want: "ip:192.168.1.10"},
		{name: "empty", remoteAddr: "", want: "ip:unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			assert.Equal(t, tt.want, rateLimitKeyIP(req))
		})
	}
}
