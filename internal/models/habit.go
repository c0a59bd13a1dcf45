package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Habit priorities. Stored as strings; unknown values are tolerated and sort last.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// rankUnknown sorts unrecognized priorities after Low instead of erroring.
const rankUnknown = 4

var priorityRanks = map[string]int{
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

type Habit struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Priority  string    `json:"priority"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// HabitLog records that a habit was completed on a calendar day.
type HabitLog struct {
	ID      uuid.UUID `json:"id"`
	HabitID uuid.UUID `json:"habit_id"`
	Day     time.Time `json:"day"`
}

// NormalizePriority capitalizes a priority value so lookups are
// case-insensitive ("high" and "HIGH" both mean High).
func NormalizePriority(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	return strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
}

// PriorityRank returns the sort rank of a priority: High=1, Medium=2, Low=3.
// Unrecognized values rank last.
func PriorityRank(p string) int {
	if rank, ok := priorityRanks[NormalizePriority(p)]; ok {
		return rank
	}
	return rankUnknown
}

// ColorPalette is the fixed set of display colors cycled through when a habit
// is created without an explicit color.
var ColorPalette = [20]string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#fabebe",
	"#008080", "#e6beff", "#9a6324", "#fffac8", "#800000",
	"#aaffc3", "#808000", "#ffd8b1", "#000075", "#808080",
}

// NextColor picks the first palette entry not already used. When every entry
// is taken it falls back to the first one; the collision is accepted.
func NextColor(used []string) string {
	taken := make(map[string]bool, len(used))
	for _, c := range used {
		taken[strings.ToLower(strings.TrimSpace(c))] = true
	}
	for _, c := range ColorPalette {
		if !taken[c] {
			return c
		}
	}
	return ColorPalette[0]
}
