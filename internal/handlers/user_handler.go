package handlers

import (
	"net/http"

	"talenthub/interview/internal/repositories"
	"talenthub/interview/internal/utils"
)

// UserHandler exposes user lookup endpoints for interviewers and admins.
type UserHandler struct {
	Repo *repositories.UserRepository
}

// ListUsersHandler returns all users, optionally filtered by role.
func (h *UserHandler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.ListUsers(r.URL.Query().Get("role"))
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	payload := make([]map[string]any, 0, len(users))
	for i := range users {
		payload = append(payload, users[i].PublicMap())
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": payload})
}

// GetUserHandler returns a single user by ID.
func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.Repo.GetUserByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			utils.JSONError(w, http.StatusNotFound, "user not found")
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "failed to retrieve user")
		}
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": user.PublicMap()})
}
