package routers

import (
	"talenthub/interview/internal/handlers"
	"talenthub/interview/internal/middlewares"
	"talenthub/interview/internal/models"

	"github.com/go-chi/chi/v5"
)

// InterviewRoutes wires the lifecycle, question and evaluation endpoints.
// The guard enforces the role sets; ownership checks live in the engines.
func InterviewRoutes(r *chi.Mux, guard *middlewares.Guard, interviewHandler *handlers.InterviewHandler, questionHandler *handlers.QuestionHandler, evaluationHandler *handlers.EvaluationHandler) {
	interviewerOrAdmin := guard.RequireRoles(models.RoleInterviewer, models.RoleAdmin)
	anyParticipant := guard.RequireRoles(models.RoleInterviewer, models.RoleInterviewee, models.RoleAdmin)

	r.Route("/api/interviews", func(r chi.Router) {
		r.With(interviewerOrAdmin).Get("/", interviewHandler.ListInterviewsHandler)
		r.With(interviewerOrAdmin).Post("/", interviewHandler.CreateInterviewHandler)

		r.With(guard.RequireRoles(models.RoleInterviewee)).Get("/my-interviews", interviewHandler.MyInterviewsHandler)

		r.Route("/{id}", func(r chi.Router) {
			r.With(anyParticipant).Get("/", interviewHandler.GetInterviewHandler)
			r.With(interviewerOrAdmin).Put("/", interviewHandler.UpdateInterviewHandler)
			r.With(interviewerOrAdmin).Delete("/", interviewHandler.DeleteInterviewHandler)

			r.With(interviewerOrAdmin).Post("/assign", interviewHandler.AssignInterviewHandler)
			r.With(guard.RequireRoles(models.RoleInterviewee)).Post("/start", interviewHandler.StartInterviewHandler)
			r.With(guard.RequireRoles(models.RoleInterviewee)).Post("/complete", interviewHandler.CompleteInterviewHandler)
			r.With(interviewerOrAdmin).Put("/status", interviewHandler.SetStatusHandler)

			r.With(anyParticipant).Get("/questions", questionHandler.ListQuestionsHandler)
			r.With(interviewerOrAdmin).Post("/questions", questionHandler.AddQuestionHandler)

			r.With(anyParticipant).Get("/evaluation", evaluationHandler.GetEvaluationHandler)
			r.With(interviewerOrAdmin).Post("/evaluation", evaluationHandler.CreateEvaluationHandler)
		})

		r.Route("/questions/{id}", func(r chi.Router) {
			r.With(interviewerOrAdmin).Put("/", questionHandler.UpdateQuestionHandler)
			r.With(interviewerOrAdmin).Delete("/", questionHandler.DeleteQuestionHandler)
			r.With(guard.RequireRoles(models.RoleInterviewee, models.RoleAdmin)).Post("/answer", questionHandler.SubmitAnswerHandler)
			r.With(interviewerOrAdmin).Post("/score", questionHandler.ScoreQuestionHandler)
		})

		r.With(interviewerOrAdmin).Put("/evaluation/{id}", evaluationHandler.UpdateEvaluationHandler)
	})
}
