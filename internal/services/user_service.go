package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/nishantpal/habitgrid-backend/internal/database"
	"github.com/nishantpal/habitgrid-backend/internal/models"
	"github.com/nishantpal/habitgrid-backend/pkg/utils"
)

// isUniqueViolation reports whether err is a PostgreSQL unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// RegisterUser creates a new account. The username is validated and stored in
// normalized (lowercase) form; the password is Argon2id-hashed.
func RegisterUser(username, password, displayName string) (*models.User, error) {
	if err := utils.ValidateUsername(username); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, &utils.ValidationError{Field: "password", Message: "Password must be at least 8 characters"}
	}

	normalized := utils.NormalizeUsername(username)

	var existing string
	err := database.PostgresDB.QueryRow(
		`SELECT username FROM users WHERE LOWER(username) = $1`, normalized,
	).Scan(&existing)
	if err == nil {
		return nil, ErrUsernameTaken
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          uuid.New(),
		Username:    normalized,
		DisplayName: displayName,
	}

	err = database.PostgresDB.QueryRow(`
		INSERT INTO users (id, username, password_hash, display_name)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING created_at
	`, user.ID, normalized, hashed, displayName).Scan(&user.CreatedAt)
	if err != nil {
		// The pre-check above races with concurrent signups; the UNIQUE
		// constraint is the authority.
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// AuthenticateUser verifies credentials and returns the user on success.
// Unknown username and wrong password both return ErrInvalidCredentials.
func AuthenticateUser(username, password string) (*models.User, error) {
	normalized := utils.NormalizeUsername(username)

	user := &models.User{}
	var displayName sql.NullString
	err := database.PostgresDB.QueryRow(`
		SELECT id, username, password_hash, display_name, created_at
		FROM users WHERE LOWER(username) = $1
	`, normalized).Scan(&user.ID, &user.Username, &user.PasswordHash, &displayName, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	user.DisplayName = displayName.String

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID returns a user by id, or ErrNotFound.
func GetUserByID(userID uuid.UUID) (*models.User, error) {
	user := &models.User{}
	var displayName sql.NullString
	err := database.PostgresDB.QueryRow(`
		SELECT id, username, display_name, created_at
		FROM users WHERE id = $1
	`, userID).Scan(&user.ID, &user.Username, &displayName, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.DisplayName = displayName.String
	return user, nil
}

// UpdateDisplayName sets the user's display name. An empty value clears it.
func UpdateDisplayName(userID uuid.UUID, displayName string) error {
	result, err := database.PostgresDB.Exec(
		`UPDATE users SET display_name = NULLIF($2, '') WHERE id = $1`,
		userID, displayName,
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

// ChangePassword replaces the user's password after verifying the current one,
// then invalidates every live session so other browsers must sign in again.
func ChangePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return &utils.ValidationError{Field: "new_password", Message: "Password must be at least 8 characters"}
	}

	var passwordHash string
	err := database.PostgresDB.QueryRow(
		`SELECT password_hash FROM users WHERE id = $1`, userID,
	).Scan(&passwordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}

	valid, err := utils.VerifyPassword(currentPassword, passwordHash)
	if err != nil || !valid {
		return ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if _, err := database.PostgresDB.Exec(
		`UPDATE users SET password_hash = $2 WHERE id = $1`, userID, hashed,
	); err != nil {
		return err
	}

	return InvalidateUserSessions(userID)
}

// DeleteUser removes the account. Habits, completion logs, and planner tasks
// go with it via ON DELETE CASCADE.
func DeleteUser(userID uuid.UUID) error {
	result, err := database.PostgresDB.Exec(`DELETE FROM users WHERE id = $1`, userID)
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
	return InvalidateUserSessions(userID)
}
