package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nishantpal/habitgrid-backend/internal/database"
	"github.com/nishantpal/habitgrid-backend/internal/models"
)

// HabitMonthView builds the habit calendar for one month: the day grid,
// prev/next navigation, and each day's completed habits ordered by priority.
// One range-bounded join per call; nothing is cached.
func HabitMonthView(userID uuid.UUID, year int, month time.Month) (*models.MonthView, error) {
	view := &models.MonthView{
		Year:     year,
		Month:    month,
		Weeks:    models.MonthGrid(year, month),
		Prev:     models.PrevMonth(year, month),
		Next:     models.NextMonth(year, month),
		IsFuture: models.IsFutureMonth(year, month, time.Now()),
		Days:     map[int][]models.CompletedHabit{},
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	rows, err := database.PostgresDB.Query(`
		SELECT hl.day, h.id, h.name, h.priority, h.color
		FROM habit_log hl
		JOIN habits h ON h.id = hl.habit_id
		WHERE h.user_id = $1 AND hl.day BETWEEN $2 AND $3
		ORDER BY hl.day, hl.created_at
	`, userID, first, last)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day time.Time
		var habitID uuid.UUID
		var entry models.CompletedHabit
		if err := rows.Scan(&day, &habitID, &entry.Name, &entry.Priority, &entry.Color); err != nil {
			return nil, err
		}
		entry.HabitID = habitID.String()
		view.Days[day.Day()] = append(view.Days[day.Day()], entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Stable sort keeps insertion order among habits of equal rank.
	for _, entries := range view.Days {
		sort.SliceStable(entries, func(i, j int) bool {
			return models.PriorityRank(entries[i].Priority) < models.PriorityRank(entries[j].Priority)
		})
	}

	return view, nil
}

// PlannerMonthView builds the planner calendar for one month with tasks
// grouped by day-of-month, on the same grid as the habit calendar.
func PlannerMonthView(userID uuid.UUID, year int, month time.Month) (*models.PlannerMonthView, error) {
	view := &models.PlannerMonthView{
		Year:     year,
		Month:    month,
		Weeks:    models.MonthGrid(year, month),
		Prev:     models.PrevMonth(year, month),
		Next:     models.NextMonth(year, month),
		IsFuture: models.IsFutureMonth(year, month, time.Now()),
		Days:     map[int][]models.PlannerTask{},
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	rows, err := database.PostgresDB.Query(`
		SELECT id, user_id, task, day, completed, created_at
		FROM planner_tasks
		WHERE user_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day, created_at
	`, userID, first, last)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t models.PlannerTask
		if err := rows.Scan(&t.ID, &t.UserID, &t.Task, &t.Day, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		view.Days[t.Day.Day()] = append(view.Days[t.Day.Day()], t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return view, nil
}
