package models

import (
	"time"

	"github.com/google/uuid"
)

// PlannerTask is a standalone to-do item scheduled for one calendar day,
// independent of habits.
type PlannerTask struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Task      string    `json:"task"`
	Day       time.Time `json:"day"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
