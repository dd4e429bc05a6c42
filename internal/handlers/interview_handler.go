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

// InterviewHandler exposes the interview lifecycle endpoints.
type InterviewHandler struct {
	Lifecycle *services.LifecycleService
}

// CreateInterviewHandler creates a draft interview owned by the caller.
func (h *InterviewHandler) CreateInterviewHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}

	var input services.CreateInterviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	interview, err := h.Lifecycle.CreateInterview(identity.UserID, input)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]any{"data": interview})
}

// ListInterviewsHandler lists the caller's interviews, newest first.
func (h *InterviewHandler) ListInterviewsHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}

	status := models.InterviewStatus(r.URL.Query().Get("status"))
	interviews, err := h.Lifecycle.ListByInterviewer(identity.UserID, status)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": interviews})
}

// MyInterviewsHandler lists the interviews assigned to the calling
// interviewee, never including drafts.
func (h *InterviewHandler) MyInterviewsHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}

	status := models.InterviewStatus(r.URL.Query().Get("status"))
	interviews, err := h.Lifecycle.ListByInterviewee(identity.UserID, status)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": interviews})
}

// GetInterviewHandler returns one interview, applying visibility rules.
func (h *InterviewHandler) GetInterviewHandler(w http.ResponseWriter, r *http.Request) {
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

	interview, err := h.Lifecycle.GetInterview(interviewID, identity.UserID, identity.Role)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": interview})
}

// UpdateInterviewHandler applies partial field edits.
func (h *InterviewHandler) UpdateInterviewHandler(w http.ResponseWriter, r *http.Request) {
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

	var input services.UpdateInterviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	interview, err := h.Lifecycle.UpdateInterview(interviewID, identity.UserID, identity.Role, input)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": interview})
}

// DeleteInterviewHandler deletes an interview and everything under it.
func (h *InterviewHandler) DeleteInterviewHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Lifecycle.DeleteInterview(interviewID, identity.UserID, identity.Role); err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"message": "interview deleted"})
}

type assignRequest struct {
	IntervieweeID *uint `json:"interviewee_id"`
}

// AssignInterviewHandler assigns a draft interview to an interviewee.
func (h *InterviewHandler) AssignInterviewHandler(w http.ResponseWriter, r *http.Request) {
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

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IntervieweeID == nil {
		utils.JSONError(w, http.StatusBadRequest, "interviewee_id is required")
		return
	}

	interview, err := h.Lifecycle.AssignInterview(interviewID, *req.IntervieweeID, identity.UserID, identity.Role)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	metrics.ObserveTransition(string(interview.Status))
	utils.JSON(w, http.StatusOK, map[string]any{"data": interview})
}

// StartInterviewHandler lets the assigned interviewee start the interview.
func (h *InterviewHandler) StartInterviewHandler(w http.ResponseWriter, r *http.Request) {
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

	interview, err := h.Lifecycle.StartInterview(interviewID, identity.UserID)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	metrics.ObserveTransition(string(interview.Status))
	utils.JSON(w, http.StatusOK, map[string]any{"data": interview})
}

// CompleteInterviewHandler lets the assigned interviewee hand in answers.
func (h *InterviewHandler) CompleteInterviewHandler(w http.ResponseWriter, r *http.Request) {
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

	interview, err := h.Lifecycle.CompleteInterview(interviewID, identity.UserID)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	metrics.ObserveTransition(string(interview.Status))
	utils.JSON(w, http.StatusOK, map[string]any{"data": interview})
}

type setStatusRequest struct {
	Status *models.InterviewStatus `json:"status"`
}

// SetStatusHandler is the explicit status-set endpoint for the owner.
func (h *InterviewHandler) SetStatusHandler(w http.ResponseWriter, r *http.Request) {
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

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == nil {
		utils.JSONError(w, http.StatusBadRequest, "status is required")
		return
	}

	interview, err := h.Lifecycle.SetStatus(interviewID, *req.Status, identity.UserID, identity.Role)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	metrics.ObserveTransition(string(interview.Status))
	utils.JSON(w, http.StatusOK, map[string]any{"data": interview})
}
