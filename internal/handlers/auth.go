package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"student-feedback-backend/internal/auth"
	"student-feedback-backend/internal/models"
	"student-feedback-backend/internal/repository"

	"go.uber.org/zap"
)

// invalidCredentialsMsg is shared by the unknown-username and
// wrong-password paths so the two are indistinguishable to a caller.
const invalidCredentialsMsg = "invalid username or password"

type AuthHandler struct {
	users  repository.UserRepository
	tokens *auth.TokenService
	lg     *zap.SugaredLogger
}

func NewAuthHandler(users repository.UserRepository, tokens *auth.TokenService, lg *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		lg:     lg,
	}
}

// --- Request types ---

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- POST /register ---

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Username) < 3 {
		writeError(w, http.StatusBadRequest, "username must be at least 3 characters")
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.lg.Errorf("hash password error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "username already taken")
			return
		}
		h.lg.Errorf("create user error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"user":    user.Public(),
	})
}

// --- POST /login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.users.FindByUsername(r.Context(), req.Username)
	if err != nil {
		h.lg.Errorf("find user error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, invalidCredentialsMsg)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		h.lg.Errorf("issue token error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user":    user.Public(),
	})
}
