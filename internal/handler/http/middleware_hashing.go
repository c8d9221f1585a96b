package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/utils"
)

// hashHeader carries the client-computed HMAC-SHA256 signature of the raw
// request body, hex-encoded.
const hashHeader = "HashSHA256"

// withHashCheck verifies the integrity of request bodies signed by the
// client. The check engages only when a hash key is configured AND the
// request carries the HashSHA256 header; unsigned requests pass through so
// that clients without the shared key keep working.
//
// The signature covers the body after transport decoding, so the middleware
// must sit downstream of the gzip middleware in the chain.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestHash := r.Header.Get(hashHeader)
		if h.cfg.App.HashKey == "" || requestHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.withHashCheck").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := hex.EncodeToString(utils.Hash(body))
		if !hmac.Equal([]byte(hashedBody), []byte(requestHash)) {
			log.Error().Str("func", "*Handler.withHashCheck").
				Str("hash from request", requestHash).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.withHashCheck").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
