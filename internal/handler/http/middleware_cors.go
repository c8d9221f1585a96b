package http

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// withCORS builds the CORS middleware from the configured origin allowlist.
// Origins are comma-separated; "*" (the configuration default) allows any
// origin, and so does an empty value. The Authorization and X-Trace-ID
// headers are exposed so that browser clients can read the issued token and
// correlate requests.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	var allowedOrigins []string
	if raw := strings.TrimSpace(h.cfg.App.CORSAllowedOrigins); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			allowedOrigins = append(allowedOrigins, strings.TrimSpace(origin))
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", traceIDHeader, hashHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
	})

	return c.Handler
}
