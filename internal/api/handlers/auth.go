package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/messagely/messagely/internal/auth"
	"github.com/messagely/messagely/internal/models"
	"github.com/messagely/messagely/internal/repositories"
	"github.com/messagely/messagely/internal/utils"
)

// AuthHandler owns the unauthenticated surface: registration and login.
// Both end by issuing a token and stamping last_login_at.
type AuthHandler struct {
	Users  *repositories.UserStore
	Tokens auth.Tokens
}

// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input repositories.RegisterInput

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONError(w, fmt.Errorf("decode register input: %w", models.ErrValidation))
		return
	}

	user, err := h.Users.Register(r.Context(), input)
	if err != nil {
		utils.JSONError(w, err)
		return
	}

	h.issueToken(w, r, user.Username)
}

// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONError(w, fmt.Errorf("decode login input: %w", models.ErrValidation))
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.JSONError(w, fmt.Errorf("login: %w", models.ErrValidation))
		return
	}

	ok, err := h.Users.Authenticate(r.Context(), input.Username, input.Password)
	if err != nil {
		utils.JSONError(w, err)
		return
	}
	if !ok {
		utils.JSONError(w, models.ErrInvalidCredentials)
		return
	}

	h.issueToken(w, r, input.Username)
}

// issueToken updates the login timestamp and responds with {token}. Shared
// tail of register and login.
func (h *AuthHandler) issueToken(w http.ResponseWriter, r *http.Request, username string) {
	if err := h.Users.UpdateLoginTimestamp(r.Context(), username); err != nil {
		utils.JSONError(w, err)
		return
	}

	token, err := h.Tokens.Sign(username)
	if err != nil {
		utils.JSONError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]string{"token": token})
}
