package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"talenthub/interview/internal/models"
	"talenthub/interview/internal/repositories"
	"talenthub/interview/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler manages authentication endpoints.
type AuthHandler struct {
	Repo      *repositories.UserRepository
	JWTSecret string
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing fields")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleInterviewee
	}
	// Admin accounts are seeded, never registered.
	if role != models.RoleInterviewer && role != models.RoleInterviewee {
		utils.JSONError(w, http.StatusBadRequest, "invalid role")
		return
	}

	if existing, _ := h.Repo.GetUserByUsername(req.Username); existing != nil {
		utils.JSONError(w, http.StatusConflict, "username taken")
		return
	}
	if existing, _ := h.Repo.GetUserByEmail(req.Email); existing != nil {
		utils.JSONError(w, http.StatusConflict, "email taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}
	user := &models.User{Username: req.Username, Email: req.Email, PasswordHash: string(hash), Role: role}
	if err := h.Repo.CreateUser(user); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	utils.JSON(w, http.StatusCreated, user.PublicMap())
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	user, err := h.Repo.GetUserByUsername(req.Username)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.JWTSecret))
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}
	utils.JSON(w, http.StatusOK, authResponse{Token: signed})
}
