package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/utils"
	"github.com/jacklucas/notes-api/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteResponseFrom(note), http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, userID, chi.URLParam(r, "noteID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteResponseFrom(note), http.StatusOK)
}

// listNotes returns one page of the caller's notes. Supported query
// parameters: page, size, sort, order, and tag (exact tag name filter).
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tagName := r.URL.Query().Get("tag")

	page, err := h.services.NoteService.ListNotes(ctx, userID, tagName, pageRequestFromQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items := make([]models.NoteResponse, 0, len(page.Items))
	for _, note := range page.Items {
		items = append(items, models.NoteResponseFrom(note))
	}

	utils.WriteJSON(w, models.Page[models.NoteResponse]{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}, http.StatusOK)
}

func (h *Handler) putNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.PutNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	note, err := h.services.NoteService.ReplaceNote(ctx, userID, chi.URLParam(r, "noteID"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteResponseFrom(note), http.StatusOK)
}

func (h *Handler) patchNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.PatchNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	note, err := h.services.NoteService.PatchNote(ctx, userID, chi.URLParam(r, "noteID"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteResponseFrom(note), http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, userID, chi.URLParam(r, "noteID")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
