package handlers

import (
	"net/http"

	"github.com/messagely/messagely/internal/repositories"
	"github.com/messagely/messagely/internal/utils"
)

// UserHandler serves the user directory to any logged-in user.
type UserHandler struct {
	Users *repositories.UserStore
}

// GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.All(r.Context())
	if err != nil {
		utils.JSONError(w, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, map[string]any{"users": users})
}

// GET /users/{username}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.Get(r.Context(), r.PathValue("username"))
	if err != nil {
		utils.JSONError(w, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, map[string]any{"user": user})
}

// GET /users/{username}/to
func (h *UserHandler) MessagesTo(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Users.MessagesTo(r.Context(), r.PathValue("username"))
	if err != nil {
		utils.JSONError(w, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, map[string]any{"messages": messages})
}

// GET /users/{username}/from
func (h *UserHandler) MessagesFrom(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Users.MessagesFrom(r.Context(), r.PathValue("username"))
	if err != nil {
		utils.JSONError(w, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, map[string]any{"messages": messages})
}
