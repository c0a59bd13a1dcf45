package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/nishantpal/habitgrid-backend/internal/services"
	"github.com/nishantpal/habitgrid-backend/pkg/utils"
)

// Response is the common JSON envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, success bool, message string) {
	writeJSON(w, status, Response{Success: success, Message: message})
}

// writeServiceError maps domain errors to HTTP statuses. Everything else is a
// generic 500 so internals never leak.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *utils.ValidationError
	switch {
	case errors.As(err, &ve):
		writeMessage(w, http.StatusBadRequest, false, ve.Message)
	case errors.Is(err, services.ErrNotFound):
		writeMessage(w, http.StatusNotFound, false, "Not found")
	case errors.Is(err, services.ErrUsernameTaken):
		writeMessage(w, http.StatusConflict, false, "Username is already taken")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, false, "Invalid username or password")
	case errors.Is(err, services.ErrFutureDate):
		writeMessage(w, http.StatusBadRequest, false, "Cannot mark completion on a future date")
	default:
		writeMessage(w, http.StatusInternalServerError, false, "Database error")
	}
}

func extractBearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// requireAuth validates the session token and returns the authenticated user's
// ID. Returns (uuid.Nil, false) if not authenticated. A valid session has its
// expiry pushed out again, so active users are never logged out mid-use.
func requireAuth(r *http.Request) (uuid.UUID, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return uuid.Nil, false
	}
	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		return uuid.Nil, false
	}
	// Sliding expiry; a failed refresh does not invalidate the request.
	services.RefreshSession(token)
	return userID, true
}

func writeAuthRequired(w http.ResponseWriter) {
	writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
}
