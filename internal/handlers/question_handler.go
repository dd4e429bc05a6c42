package handlers

import (
	"encoding/json"
	"net/http"

	"talenthub/interview/internal/middlewares"
	"talenthub/interview/internal/models"
	"talenthub/interview/internal/services"
	"talenthub/interview/internal/utils"
)

// QuestionHandler exposes question authoring, answering and scoring.
type QuestionHandler struct {
	Questions *services.QuestionService
}

// AddQuestionHandler appends a question to an interview.
func (h *QuestionHandler) AddQuestionHandler(w http.ResponseWriter, r *http.Request) {
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

	var input services.QuestionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	question, err := h.Questions.AddQuestion(interviewID, identity.UserID, identity.Role, input)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]any{"data": question})
}

// ListQuestionsHandler returns the interview's questions. Interviewees get
// the redacted candidate projection.
func (h *QuestionHandler) ListQuestionsHandler(w http.ResponseWriter, r *http.Request) {
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

	if identity.Role == models.RoleInterviewee {
		views, err := h.Questions.ListQuestionsForCandidate(interviewID, identity.UserID, identity.Role)
		if err != nil {
			utils.JSONAppError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"data": views})
		return
	}

	questions, err := h.Questions.ListQuestions(interviewID, identity.UserID, identity.Role)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": questions})
}

// UpdateQuestionHandler applies partial question edits.
func (h *QuestionHandler) UpdateQuestionHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	questionID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var input services.UpdateQuestionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	question, err := h.Questions.UpdateQuestion(questionID, identity.UserID, identity.Role, input)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": question})
}

// DeleteQuestionHandler removes a question.
func (h *QuestionHandler) DeleteQuestionHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	questionID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	if err := h.Questions.DeleteQuestion(questionID, identity.UserID, identity.Role); err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"message": "question deleted"})
}

type answerRequest struct {
	Answer *string `json:"answer"`
}

// SubmitAnswerHandler records the candidate's answer to one question.
func (h *QuestionHandler) SubmitAnswerHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	questionID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answer == nil {
		utils.JSONError(w, http.StatusBadRequest, "answer is required")
		return
	}

	question, err := h.Questions.SubmitAnswer(questionID, identity.UserID, identity.Role, *req.Answer)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": question.ForCandidate()})
}

type scoreRequest struct {
	Score    *int   `json:"score"`
	Comments string `json:"comments"`
}

// ScoreQuestionHandler records the interviewer's score for one question.
// The score is taken as-is; it is not clamped to the question's point value.
func (h *QuestionHandler) ScoreQuestionHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	questionID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Score == nil {
		utils.JSONError(w, http.StatusBadRequest, "score is required")
		return
	}

	question, err := h.Questions.ScoreQuestion(questionID, identity.UserID, identity.Role, *req.Score, req.Comments)
	if err != nil {
		utils.JSONAppError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": question})
}
