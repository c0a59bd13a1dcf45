package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nishantpal/habitgrid-backend/internal/services"
)

type UpdateAccountRequest struct {
	DisplayName string `json:"display_name"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdateAccount updates the user's display name.
func UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	var req UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if err := services.UpdateDisplayName(userID, req.DisplayName); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Account updated")
}

// ChangePassword replaces the password after verifying the current one. All
// sessions are invalidated, so the client must sign in again.
func ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if err := services.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Password changed. Please sign in again.")
}

// DeleteAccount removes the account and everything it owns.
func DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	if err := services.DeleteUser(userID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Account deleted")
}
