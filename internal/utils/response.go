package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/messagely/messagely/internal/models"
)

type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// JSONResponse sends a JSON response with the given status and payload.
func JSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// JSONError is the single error boundary: it maps the closed error-kind
// set from internal/models to a status code and writes
// {"error": {"message", "status"}}. Errors outside the set become a 500
// and get logged; their text never reaches the client.
func JSONError(w http.ResponseWriter, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	JSONResponse(w, status, map[string]ErrorBody{
		"error": {Message: message, Status: status},
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest, models.ErrValidation.Error()
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusBadRequest, models.ErrInvalidCredentials.Error()
	case errors.Is(err, models.ErrDuplicateUsername):
		return http.StatusBadRequest, models.ErrDuplicateUsername.Error()
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, models.ErrNotFound.Error()
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized, models.ErrUnauthorized.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
