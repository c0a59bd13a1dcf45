package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/nishantpal/habitgrid-backend/internal/services"
)

type ToggleCompletionRequest struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
}

type SetDayRequest struct {
	Date     string   `json:"date"`
	HabitIDs []string `json:"habit_ids"`
}

// ToggleCompletion flips completion of (habit, date) for the authenticated user.
func ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	var req ToggleCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	habitID, err := uuid.Parse(req.HabitID)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid habit id")
		return
	}

	completed, err := services.ToggleCompletion(userID, habitID, req.Date)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]bool{"completed": completed},
	})
}

// SetDayCompletions replaces the completed-habit set for one day (full
// replace, not a diff). An empty habit_ids list clears the day.
func SetDayCompletions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	var req SetDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	habitIDs := make([]uuid.UUID, 0, len(req.HabitIDs))
	for _, raw := range req.HabitIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, false, "Invalid habit id")
			return
		}
		habitIDs = append(habitIDs, id)
	}

	if err := services.SetDayCompletions(userID, req.Date, habitIDs); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Day updated")
}
