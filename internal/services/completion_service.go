package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/nishantpal/habitgrid-backend/internal/database"
)

// ToggleCompletion flips the completion state of (habit, day): an existing log
// row is deleted, a missing one is inserted. Toggling twice restores the
// original state. Returns the new completion state.
func ToggleCompletion(userID, habitID uuid.UUID, day string) (bool, error) {
	d, err := ParseDay(day)
	if err != nil {
		return false, err
	}
	if IsFutureDay(d, time.Now()) {
		return false, ErrFutureDate
	}

	// Ownership gate: a habit belonging to someone else is indistinguishable
	// from a habit that does not exist.
	var one int
	err = database.PostgresDB.QueryRow(
		`SELECT 1 FROM habits WHERE id = $1 AND user_id = $2`, habitID, userID,
	).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, ErrNotFound
		}
		return false, err
	}

	result, err := database.PostgresDB.Exec(
		`DELETE FROM habit_log WHERE habit_id = $1 AND day = $2`, habitID, d,
	)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows > 0 {
		return false, nil
	}

	_, err = database.PostgresDB.Exec(
		`INSERT INTO habit_log (habit_id, day) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		habitID, d,
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetDayCompletions replaces the full set of completed habits for the user on
// one day: every existing log row for that day is deleted, then one row is
// inserted per listed habit. Inserts are scoped to the user's habits, so
// foreign ids are skipped silently. Runs in a single transaction.
func SetDayCompletions(userID uuid.UUID, day string, habitIDs []uuid.UUID) error {
	d, err := ParseDay(day)
	if err != nil {
		return err
	}
	if IsFutureDay(d, time.Now()) {
		return ErrFutureDate
	}

	tx, err := database.PostgresDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM habit_log
		USING habits
		WHERE habit_log.habit_id = habits.id AND habits.user_id = $1 AND habit_log.day = $2
	`, userID, d)
	if err != nil {
		return err
	}

	for _, habitID := range habitIDs {
		_, err = tx.Exec(`
			INSERT INTO habit_log (habit_id, day)
			SELECT id, $3 FROM habits WHERE id = $1 AND user_id = $2
			ON CONFLICT DO NOTHING
		`, habitID, userID, d)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
