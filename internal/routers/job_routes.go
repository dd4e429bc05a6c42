package routers

import (
	"talenthub/interview/internal/handlers"
	"talenthub/interview/internal/middlewares"

	"github.com/go-chi/chi/v5"
)

func JobRoutes(r *chi.Mux, guard *middlewares.Guard, jobHandler *handlers.JobHandler) {
	r.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", jobHandler.ListJobsHandler)
		r.Get("/{id}", jobHandler.GetJobHandler)

		// Any authenticated user may manage job requirements.
		r.Group(func(r chi.Router) {
			r.Use(guard.RequireRoles())
			r.Post("/", jobHandler.CreateJobHandler)
			r.Put("/{id}", jobHandler.UpdateJobHandler)
			r.Delete("/{id}", jobHandler.DeleteJobHandler)
		})
	})
}
