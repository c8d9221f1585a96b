package http

import (
	"net/http"

	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/utils"
	"github.com/mkarpekin/go-notes-keeper/models"
)

// ping reports whether the service can reach its MongoDB backend. A failed
// ping answers 500 so that load balancers take the instance out of rotation.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.storages == nil || h.storages.Mongo == nil {
		log.Error().Msg("storage is not initialized")
		utils.WriteJSON(w, models.HealthResponse{Status: "down"}, http.StatusInternalServerError)
		return
	}

	if err := h.storages.Mongo.Ping(r.Context()); err != nil {
		log.Err(err).Msg("mongodb ping failed")
		utils.WriteJSON(w, models.HealthResponse{Status: "down"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
