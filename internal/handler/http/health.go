package http

import (
	"net/http"

	"github.com/jacklucas/notes-api/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
