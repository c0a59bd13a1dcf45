package models

import "time"

// MonthRef identifies one calendar month for navigation.
type MonthRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// CompletedHabit is the per-day display projection of a completed habit,
// ordered by priority rank within the day.
type CompletedHabit struct {
	HabitID  string `json:"habit_id"`
	Name     string `json:"name"`
	Priority string `json:"priority"`
	Color    string `json:"color"`
}

// MonthView is the habit calendar for one month: the day grid, navigation
// targets, and each day's completed habits.
type MonthView struct {
	Year     int                      `json:"year"`
	Month    time.Month               `json:"month"`
	Weeks    [][]int                  `json:"weeks"`
	Prev     MonthRef                 `json:"prev"`
	Next     MonthRef                 `json:"next"`
	IsFuture bool                     `json:"is_future"`
	Days     map[int][]CompletedHabit `json:"days"`
}

// PlannerMonthView is the planner calendar for one month, tasks grouped by day.
type PlannerMonthView struct {
	Year     int                   `json:"year"`
	Month    time.Month            `json:"month"`
	Weeks    [][]int               `json:"weeks"`
	Prev     MonthRef              `json:"prev"`
	Next     MonthRef              `json:"next"`
	IsFuture bool                  `json:"is_future"`
	Days     map[int][]PlannerTask `json:"days"`
}

// MonthGrid lays out a month as Monday-first weeks of day numbers, with 0 for
// cells belonging to adjacent months.
func MonthGrid(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Weekday with Monday=0 .. Sunday=6
	lead := (int(first.Weekday()) + 6) % 7
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var weeks [][]int
	week := make([]int, 7)
	cell := lead
	for day := 1; day <= daysInMonth; day++ {
		week[cell] = day
		cell++
		if cell == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			cell = 0
		}
	}
	if cell > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// NextMonth returns the month after (year, month), rolling the year over at December.
func NextMonth(year int, month time.Month) MonthRef {
	if month == time.December {
		return MonthRef{Year: year + 1, Month: time.January}
	}
	return MonthRef{Year: year, Month: month + 1}
}

// PrevMonth returns the month before (year, month), rolling the year back at January.
func PrevMonth(year int, month time.Month) MonthRef {
	if month == time.January {
		return MonthRef{Year: year - 1, Month: time.December}
	}
	return MonthRef{Year: year, Month: month - 1}
}

// IsFutureMonth reports whether (year, month) is strictly after (now's year, month).
func IsFutureMonth(year int, month time.Month, now time.Time) bool {
	if year != now.Year() {
		return year > now.Year()
	}
	return month > now.Month()
}
