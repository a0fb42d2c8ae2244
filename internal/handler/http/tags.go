package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/utils"
	"github.com/jacklucas/notes-api/models"
)

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	tag, err := h.services.TagService.CreateTag(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TagResponseFrom(tag), http.StatusCreated)
}

func (h *Handler) getTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tag, err := h.services.TagService.GetTag(ctx, userID, chi.URLParam(r, "tagID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TagResponseFrom(tag), http.StatusOK)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	page, err := h.services.TagService.ListTags(ctx, userID, pageRequestFromQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items := make([]models.TagResponse, 0, len(page.Items))
	for _, tag := range page.Items {
		items = append(items, models.TagResponseFrom(tag))
	}

	utils.WriteJSON(w, models.Page[models.TagResponse]{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}, http.StatusOK)
}

func (h *Handler) putTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.PutTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	tag, err := h.services.TagService.RenameTag(ctx, userID, chi.URLParam(r, "tagID"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TagResponseFrom(tag), http.StatusOK)
}

func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.TagService.DeleteTag(ctx, userID, chi.URLParam(r, "tagID")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
