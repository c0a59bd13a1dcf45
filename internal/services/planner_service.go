package services

import (
	"github.com/google/uuid"
	"github.com/nishantpal/habitgrid-backend/internal/database"
	"github.com/nishantpal/habitgrid-backend/internal/models"
	"github.com/nishantpal/habitgrid-backend/pkg/utils"
)

// AddTask schedules a planner task for the user on one day.
func AddTask(userID uuid.UUID, day, text string) (*models.PlannerTask, error) {
	if text == "" {
		return nil, &utils.ValidationError{Field: "task", Message: "Task text is required"}
	}
	d, err := ParseDay(day)
	if err != nil {
		return nil, err
	}

	task := &models.PlannerTask{
		ID:     uuid.New(),
		UserID: userID,
		Task:   text,
		Day:    d,
	}

	err = database.PostgresDB.QueryRow(`
		INSERT INTO planner_tasks (id, user_id, task, day)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, task.ID, task.UserID, task.Task, task.Day).Scan(&task.CreatedAt)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ToggleTask flips the completed flag of a task the user owns. A foreign id
// affects zero rows and reads as ErrNotFound.
func ToggleTask(userID, taskID uuid.UUID) error {
	result, err := database.PostgresDB.Exec(`
		UPDATE planner_tasks SET completed = NOT completed
		WHERE id = $1 AND user_id = $2
	`, taskID, userID)
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

// DeleteTask removes a task the user owns; same silent-no-op policy as ToggleTask.
func DeleteTask(userID, taskID uuid.UUID) error {
	result, err := database.PostgresDB.Exec(
		`DELETE FROM planner_tasks WHERE id = $1 AND user_id = $2`, taskID, userID,
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

// DayTasks returns the user's tasks for one day in creation order.
func DayTasks(userID uuid.UUID, day string) ([]models.PlannerTask, error) {
	d, err := ParseDay(day)
	if err != nil {
		return nil, err
	}

	rows, err := database.PostgresDB.Query(`
		SELECT id, user_id, task, day, completed, created_at
		FROM planner_tasks
		WHERE user_id = $1 AND day = $2
		ORDER BY created_at
	`, userID, d)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.PlannerTask{}
	for rows.Next() {
		var t models.PlannerTask
		if err := rows.Scan(&t.ID, &t.UserID, &t.Task, &t.Day, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
