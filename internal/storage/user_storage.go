package storage

import (
	"database/sql"
	"errors"

	"SeniorCompanion_Backend/internal/models"

	"modernc.org/sqlite"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)

// sqlite extended error code for UNIQUE constraint violations.
const sqliteConstraintUnique = 2067

// CreateUser inserts a user and its blank profile in one transaction.
// Profile creation is an explicit step of the registration workflow,
// not a side effect somewhere else.
func CreateUser(email, username, passwordHash string, isStaff bool) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO users(email, username, password_hash, is_staff) VALUES(?, ?, ?, ?)",
		email, username, passwordHash, isStaff,
	)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return 0, ErrEmailExists
		}
		return 0, err
	}

	userID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec("INSERT INTO profiles(user_id) VALUES(?)", userID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(userID), nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.IsStaff)
	if err == sql.ErrNoRows {
		return user, ErrUserNotFound
	}
	return user, err
}

func GetUserByEmail(email string) (models.User, error) {
	row := db.QueryRow(
		"SELECT id, email, username, password_hash, is_staff FROM users WHERE email = ?", email)
	return scanUser(row)
}

func GetUserByID(id int) (models.User, error) {
	row := db.QueryRow(
		"SELECT id, email, username, password_hash, is_staff FROM users WHERE id = ?", id)
	return scanUser(row)
}
