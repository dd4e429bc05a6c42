package routers

import (
	"talenthub/interview/internal/handlers"
	"talenthub/interview/internal/middlewares"
	"talenthub/interview/internal/models"

	"github.com/go-chi/chi/v5"
)

func UserRoutes(r *chi.Mux, guard *middlewares.Guard, userHandler *handlers.UserHandler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(guard.RequireRoles(models.RoleInterviewer, models.RoleAdmin))
		r.Get("/", userHandler.ListUsersHandler)   // List users, optional role filter
		r.Get("/{id}", userHandler.GetUserHandler) // Get user by ID
	})
}
