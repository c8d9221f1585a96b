package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(withTracing)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(h.withHashCheck)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.me)

		r.Post("/api/notes/", h.createNote)
		r.Get("/api/notes/", h.listNotes)
		r.Get("/api/notes/{noteID}", h.getNote)
		r.Put("/api/notes/{noteID}", h.updateNote)
		r.Delete("/api/notes/{noteID}", h.deleteNote)
	})

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/ping", h.ping)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
