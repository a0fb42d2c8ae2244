package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// owner-scoped routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/notes", func(r chi.Router) {
			r.Post("/", h.createNote)
			r.Get("/", h.listNotes)
			r.Get("/{noteID}", h.getNote)
			r.Put("/{noteID}", h.putNote)
			r.Patch("/{noteID}", h.patchNote)
			r.Delete("/{noteID}", h.deleteNote)
		})

		r.Route("/api/tags", func(r chi.Router) {
			r.Post("/", h.createTag)
			r.Get("/", h.listTags)
			r.Get("/{tagID}", h.getTag)
			r.Put("/{tagID}", h.putTag)
			r.Delete("/{tagID}", h.deleteTag)
		})
	})

	return router
}
