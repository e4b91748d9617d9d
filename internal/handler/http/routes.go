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

	router.Group(func(r chi.Router) {
		r.Post("/api/accounts/register", h.register)
		r.Post("/api/accounts/confirm", h.confirmRegistration)
		r.Post("/api/accounts/login", h.login)
		r.Post("/api/accounts/forgot-password", h.forgotPassword)
		r.Post("/api/accounts/reset-password", h.resetPassword)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
