package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/nishantpal/habitgrid-backend/internal/services"
)

type CreateHabitRequest struct {
	Name     string `json:"name"`
	Priority string `json:"priority"`
	Color    string `json:"color,omitempty"`
}

type UpdateHabitRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority string `json:"priority"`
	Color    string `json:"color,omitempty"`
}

// GetHabits returns the authenticated user's habits sorted by priority.
func GetHabits(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	habits, err := services.ListHabits(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: habits})
}

// CreateHabit creates a habit; an omitted color is assigned from the palette.
func CreateHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	var req CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	habit, err := services.CreateHabit(userID, req.Name, req.Priority, req.Color)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{Success: true, Message: "Habit created", Data: habit})
}

// UpdateHabit edits a habit the user owns.
func UpdateHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	var req UpdateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	habitID, err := uuid.Parse(req.ID)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid habit id")
		return
	}

	if err := services.UpdateHabit(userID, habitID, req.Name, req.Priority, req.Color); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Habit updated")
}

// DeleteHabit removes a habit and its completion log (?id=<uuid>).
func DeleteHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	habitID, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid habit id")
		return
	}

	if err := services.DeleteHabit(userID, habitID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Habit deleted")
}
