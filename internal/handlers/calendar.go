package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nishantpal/habitgrid-backend/internal/services"
)

// parseYearMonth reads year and month query params, defaulting to the current
// month when absent.
func parseYearMonth(r *http.Request) (int, time.Month, bool) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		year = y
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, false
		}
		month = time.Month(m)
	}
	return year, month, true
}

// GetCalendarMonth returns the habit month view (?year=&month=).
func GetCalendarMonth(w http.ResponseWriter, r *http.Request) {
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

	view, err := services.HabitMonthView(userID, year, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: view})
}
