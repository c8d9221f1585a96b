// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Karpekin

package http

import (
	"net"
	"net/http"
	"strconv"

	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/store"
)

// withRateLimit caps how often a single client IP may hit the wrapped routes.
// It is applied to the register and login endpoints to slow down credential
// stuffing. The limit and window come from the server configuration; a
// non-positive limit or a missing limiter disables the check entirely.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	limit := h.cfg.Server.AuthRateLimit
	window := h.cfg.Server.AuthRateWindow

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit <= 0 || h.storages == nil || h.storages.RateLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := rateLimitKeyIP(r)
		decision := h.storages.RateLimiter.Allow(key, limit, window)
		applyRateHeaders(w, limit, decision)

		if !decision.Allowed {
			logger.FromRequest(r).Warn().
				Str("key", key).
				Str("uri", r.RequestURI).
				Msg("rate limit exceeded")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// rateLimitKeyIP derives the limiter key from the client address. The port is
// stripped so that sequential connections from one host share a bucket.
func rateLimitKeyIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		host = "unknown"
	}
	return "ip:" + host
}

// applyRateHeaders reports the limiter state back to the client so that
// well-behaved clients can back off before hitting the limit.
func applyRateHeaders(w http.ResponseWriter, limit int, decision store.RateDecision) {
	if limit <= 0 {
		return
	}
	remaining := limit - decision.Count
	if remaining < 0 {
		remaining = 0
	}
	headers := w.Header()
	headers.Set("X-RateLimit-Limit", strconv.Itoa(limit))
	headers.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	if !decision.WindowEnd.IsZero() {
		headers.Set("X-RateLimit-Reset", strconv.FormatInt(decision.WindowEnd.Unix(), 10))
	}
}
