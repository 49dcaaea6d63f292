package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"disneycatalog/internal/models"
)

// UserRepository persists user accounts.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername retrieves a user by their unique username, including the
// password hash so callers can verify credentials.
func (r *UserRepository) GetByUsername(username string) (models.User, error) {
	var user models.User
	row := r.db.QueryRow(
		"SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetByID retrieves a user by primary key.
func (r *UserRepository) GetByID(id string) (models.User, error) {
	var user models.User
	row := r.db.QueryRow(
		"SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// Save inserts the user when its ID is empty, otherwise updates the row. The
// caller is responsible for having hashed the password.
func (r *UserRepository) Save(user models.User) (models.User, error) {
	isNew := user.ID == ""
	if isNew {
		user.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	if isNew {
		_, err := r.db.Exec(
			"INSERT INTO users (id, username, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			user.ID, user.Username, user.Email, user.PasswordHash, now, now)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to save user: %w", err)
		}
	} else {
		res, err := r.db.Exec(
			"UPDATE users SET username = ?, email = ?, password_hash = ?, updated_at = ? WHERE id = ?",
			user.Username, user.Email, user.PasswordHash, now, user.ID)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to save user: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return models.User{}, err
		}
		if affected == 0 {
			return models.User{}, models.ErrUserNotFound
		}
	}
	return r.GetByID(user.ID)
}
