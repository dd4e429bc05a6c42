package handlers

import (
	"encoding/json"
	"net/http"

	"talenthub/interview/internal/metrics"
	"talenthub/interview/internal/middlewares"
	"talenthub/interview/internal/models"
	"talenthub/interview/internal/services"
	"talenthub/interview/internal/utils"
)

// EvaluationHandler exposes evaluation creation, retrieval and updates.
type EvaluationHandler struct {
	Evaluations *services.EvaluationService
}

// CreateEvaluationHandler creates the evaluation for an interview.
func (h *EvaluationHandler) CreateEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	interviewID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid interview id")
		return
	}

	var input services.EvaluationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	evaluation, err := h.Evaluations.CreateEvaluation(interviewID, identity.UserID, identity.Role, input)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	if evaluation.IsFinalized {
		metrics.ObserveTransition(string(models.StatusCompleted))
	}
	utils.JSON(w, http.StatusCreated, evaluationPayload(evaluation))
}

// GetEvaluationHandler returns the evaluation of an interview.
func (h *EvaluationHandler) GetEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	interviewID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid interview id")
		return
	}

	evaluation, err := h.Evaluations.GetEvaluation(interviewID, identity.UserID, identity.Role)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, evaluationPayload(evaluation))
}

// UpdateEvaluationHandler edits an unfinalized evaluation.
func (h *EvaluationHandler) UpdateEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	evaluationID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid evaluation id")
		return
	}

	var input services.EvaluationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	evaluation, err := h.Evaluations.UpdateEvaluation(evaluationID, identity.UserID, identity.Role, input)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	if input.CompleteEvaluation {
		metrics.ObserveTransition(string(models.StatusCompleted))
	}
	utils.JSON(w, http.StatusOK, evaluationPayload(evaluation))
}

func evaluationPayload(evaluation *models.InterviewEvaluation) map[string]any {
	return map[string]any{
		"data":       evaluation,
		"percentage": evaluation.CalculatePercentage(),
	}
}
