package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/messagely/messagely/internal/api/middleware"
	"github.com/messagely/messagely/internal/models"
	"github.com/messagely/messagely/internal/repositories"
	"github.com/messagely/messagely/internal/utils"
)

// MessageHandler enforces the message visibility policy: only the sender
// or recipient may view a message, and only the recipient may mark it
// read. The store itself does no authorization.
type MessageHandler struct {
	Messages *repositories.MessageStore
}

// GET /messages/{id}
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := messageID(r)
	if err != nil {
		utils.JSONError(w, err)
		return
	}

	msg, err := h.Messages.Get(r.Context(), id)
	if err != nil {
		utils.JSONError(w, err)
		return
	}

	// Authorization runs after the fetch, so an existing message the
	// caller may not view answers 401 rather than 404.
	caller := middleware.Username(r.Context())
	if caller != msg.FromUsername && caller != msg.ToUsername {
		utils.JSONError(w, models.ErrUnauthorized)
		return
	}

	from := msg.FromUser.Summary()
	to := msg.ToUser.Summary()
	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"message": models.MessageView{
			ID:       msg.ID,
			Body:     msg.Body,
			SentAt:   msg.SentAt,
			ReadAt:   msg.ReadAt,
			FromUser: &from,
			ToUser:   &to,
		},
	})
}

// POST /messages
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ToUsername string `json:"to_username"`
		Body       string `json:"body"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONError(w, fmt.Errorf("decode message input: %w", models.ErrValidation))
		return
	}

	caller := middleware.Username(r.Context())
	msg, err := h.Messages.Create(r.Context(), caller, input.ToUsername, input.Body)
	if err != nil {
		utils.JSONError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"message": map[string]any{
			"id":            msg.ID,
			"from_username": msg.FromUsername,
			"to_username":   msg.ToUsername,
			"body":          msg.Body,
			"sent_at":       msg.SentAt,
		},
	})
}

// POST /messages/{id}/read
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := messageID(r)
	if err != nil {
		utils.JSONError(w, err)
		return
	}

	msg, err := h.Messages.Get(r.Context(), id)
	if err != nil {
		utils.JSONError(w, err)
		return
	}

	if middleware.Username(r.Context()) != msg.ToUsername {
		utils.JSONError(w, models.ErrUnauthorized)
		return
	}

	read, err := h.Messages.MarkRead(r.Context(), id)
	if err != nil {
		utils.JSONError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"message": map[string]any{
			"id":      read.ID,
			"read_at": read.ReadAt,
		},
	})
}

func messageID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("message id %q: %w", r.PathValue("id"), models.ErrNotFound)
	}
	return id, nil
}
