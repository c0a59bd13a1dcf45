package services

import (
	"sort"

	"github.com/google/uuid"
	"github.com/nishantpal/habitgrid-backend/internal/database"
	"github.com/nishantpal/habitgrid-backend/internal/models"
	"github.com/nishantpal/habitgrid-backend/pkg/utils"
)

// ListHabits returns the user's habits sorted by priority rank, then creation
// order among equal ranks.
func ListHabits(userID uuid.UUID) ([]models.Habit, error) {
	rows, err := database.PostgresDB.Query(`
		SELECT id, user_id, name, priority, color, created_at
		FROM habits WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Priority, &h.Color, &h.CreatedAt); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(habits, func(i, j int) bool {
		return models.PriorityRank(habits[i].Priority) < models.PriorityRank(habits[j].Priority)
	})

	return habits, nil
}

// CreateHabit adds a habit for the user. An empty color gets the first unused
// palette entry.
func CreateHabit(userID uuid.UUID, name, priority, color string) (*models.Habit, error) {
	if name == "" {
		return nil, &utils.ValidationError{Field: "name", Message: "Habit name is required"}
	}

	if color == "" {
		used, err := usedColors(userID)
		if err != nil {
			return nil, err
		}
		color = models.NextColor(used)
	}

	habit := &models.Habit{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Priority: models.NormalizePriority(priority),
		Color:    color,
	}

	err := database.PostgresDB.QueryRow(`
		INSERT INTO habits (id, user_id, name, priority, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, habit.ID, habit.UserID, habit.Name, habit.Priority, habit.Color).Scan(&habit.CreatedAt)
	if err != nil {
		return nil, err
	}

	return habit, nil
}

// UpdateHabit edits a habit the user owns. The update is scoped by owner, so a
// foreign id affects zero rows and reads as ErrNotFound.
func UpdateHabit(userID, habitID uuid.UUID, name, priority, color string) error {
	if name == "" {
		return &utils.ValidationError{Field: "name", Message: "Habit name is required"}
	}

	if color == "" {
		used, err := usedColors(userID)
		if err != nil {
			return err
		}
		color = models.NextColor(used)
	}

	result, err := database.PostgresDB.Exec(`
		UPDATE habits SET name = $3, priority = $4, color = $5
		WHERE id = $1 AND user_id = $2
	`, habitID, userID, name, models.NormalizePriority(priority), color)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteHabit removes a habit the user owns; its completion log rows are
// removed by the cascading foreign key.
func DeleteHabit(userID, habitID uuid.UUID) error {
	result, err := database.PostgresDB.Exec(
		`DELETE FROM habits WHERE id = $1 AND user_id = $2`, habitID, userID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func usedColors(userID uuid.UUID) ([]string, error) {
	rows, err := database.PostgresDB.Query(`SELECT color FROM habits WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colors []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, rows.Err()
}
