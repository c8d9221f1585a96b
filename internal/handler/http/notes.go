// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Karpekin

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mkarpekin/go-notes-keeper/internal/logger"
	"github.com/mkarpekin/go-notes-keeper/internal/service"
	"github.com/mkarpekin/go-notes-keeper/internal/utils"
	"github.com/mkarpekin/go-notes-keeper/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.NoteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, userID, req)
	if err != nil {
		h.respondError(w, r, err, "error creating note")
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, userID, chi.URLParam(r, "noteID"))
	if err != nil {
		h.respondError(w, r, err, "error getting note")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	filter, err := parseNoteListFilter(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("invalid list query parameters")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID, filter)
	if err != nil {
		h.respondError(w, r, err, "error listing notes")
		return
	}

	utils.WriteJSON(w, models.ListNotesResponse{Notes: notes, Length: len(notes)}, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.NoteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(ctx, userID, chi.URLParam(r, "noteID"), req)
	if err != nil {
		h.respondError(w, r, err, "error updating note")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	version, err := parseVersionParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("missing or malformed version")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, userID, chi.URLParam(r, "noteID"), version); err != nil {
		h.respondError(w, r, err, "error deleting note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseNoteListFilter builds a models.NoteListFilter from the list query
// string. Absent parameters keep their zero values; the archived flag stays
// nil unless explicitly supplied, so the repository can default to active
// notes only.
func parseNoteListFilter(r *http.Request) (models.NoteListFilter, error) {
	query := r.URL.Query()

	filter := models.NoteListFilter{Tag: query.Get("tag")}

	if rawArchived := query.Get("archived"); rawArchived != "" {
		archived, err := strconv.ParseBool(rawArchived)
		if err != nil {
			return models.NoteListFilter{}, fmt.Errorf("invalid `archived` query parameter: %w", err)
		}
		filter.Archived = &archived
	}

	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			return models.NoteListFilter{}, fmt.Errorf("invalid `limit` query parameter: %w", err)
		}
		filter.Limit = limit
	}

	if rawOffset := query.Get("offset"); rawOffset != "" {
		offset, err := strconv.Atoi(rawOffset)
		if err != nil {
			return models.NoteListFilter{}, fmt.Errorf("invalid `offset` query parameter: %w", err)
		}
		filter.Offset = offset
	}

	return filter, nil
}

// parseVersionParam extracts the mandatory `version` query parameter of the
// delete endpoint. The version travels as a query parameter because DELETE
// requests carry no body.
func parseVersionParam(r *http.Request) (int64, error) {
	rawVersion := r.URL.Query().Get("version")
	if rawVersion == "" {
		return 0, service.ErrVersionIsNotSpecified
	}

	version, err := strconv.ParseInt(rawVersion, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", service.ErrVersionIsNotSpecified, rawVersion)
	}

	return version, nil
}
