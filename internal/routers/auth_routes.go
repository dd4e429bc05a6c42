package routers

import (
	"talenthub/interview/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", authHandler.LoginHandler)       // User login
		r.Post("/register", authHandler.RegisterHandler) // User registration
	})
}
