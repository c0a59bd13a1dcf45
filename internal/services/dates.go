package services

import (
	"time"

	"github.com/nishantpal/habitgrid-backend/pkg/utils"
)

// DayLayout is the wire format for calendar days.
const DayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD day string.
func ParseDay(s string) (time.Time, error) {
	day, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, &utils.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"}
	}
	return day, nil
}

// IsFutureDay reports whether day falls strictly after now's calendar date.
// Both sides are compared at day granularity, so "later today" is not future.
func IsFutureDay(day, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return d.After(today)
}
