package http

import (
	"errors"
	"net/http"

	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/service"
	"github.com/mkarpekin/go-notes-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,
	store.ErrVersionConflict:    http.StatusConflict,

	store.ErrNoteNotSaved:     http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrDecodingDocument: http.StatusInternalServerError,
	store.ErrCursorIteration:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates err into an HTTP status via statusFromError and
// writes a plain-text error response. Server-side failures are logged at
// error level and answered with a generic message so that storage internals
// never reach the client; everything else keeps the sentinel's message.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Msg(msg)
	http.Error(w, err.Error(), status)
}
