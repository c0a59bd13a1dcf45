package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/nishantpal/habitgrid-backend/internal/services"
)

type AddTaskRequest struct {
	Date string `json:"date"`
	Task string `json:"task"`
}

type ToggleTaskRequest struct {
	ID string `json:"id"`
}

// GetPlannerMonth returns the planner month view (?year=&month=).
func GetPlannerMonth(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	year, month, ok := parseYearMonth(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, false, "Invalid year or month")
		return
	}

	view, err := services.PlannerMonthView(userID, year, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: view})
}

// GetPlannerDay returns the flat task list for one day (?date=YYYY-MM-DD).
func GetPlannerDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	tasks, err := services.DayTasks(userID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: tasks})
}

// AddPlannerTask schedules a new task.
func AddPlannerTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	var req AddTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	task, err := services.AddTask(userID, req.Date, req.Task)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{Success: true, Message: "Task added", Data: task})
}

// TogglePlannerTask flips a task's completed flag.
func TogglePlannerTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	var req ToggleTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	taskID, err := uuid.Parse(req.ID)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid task id")
		return
	}

	if err := services.ToggleTask(userID, taskID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Task updated")
}

// DeletePlannerTask removes a task (?id=<uuid>).
func DeletePlannerTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeAuthRequired(w)
		return
	}

	taskID, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid task id")
		return
	}

	if err := services.DeleteTask(userID, taskID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Task deleted")
}
