package user

import (
	"database/sql"
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	createUser(user *User) error
	getUserByEmail(email string) (*User, error)
	getUserByID(id string) (*User, error)
	emailExists(email, excludeUserID string) (bool, error)
	updateUser(user *User) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (name, email, password_hash, goal_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(query, user.Name, user.Email, user.PasswordHash, user.GoalAmount).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not create user: %v", err)
	}
	return nil
}

func (r *userRepository) getUserByEmail(email string) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, goal_amount, created_at
		FROM users
		WHERE email = $1
	`

	var user User
	err := r.db.QueryRow(query, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.GoalAmount, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}

func (r *userRepository) getUserByID(id string) (*User, error) {
	query := `
		SELECT id, name, email, password_hash, goal_amount, created_at
		FROM users
		WHERE id = $1
	`

	var user User
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.GoalAmount, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}

func (r *userRepository) emailExists(email, excludeUserID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 AND id <> $2
		)
	`

	var exists bool
	err := r.db.QueryRow(query, email, excludeUserID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("could not check email: %v", err)
	}
	return exists, nil
}

func (r *userRepository) updateUser(user *User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, goal_amount = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(query, user.Name, user.Email, user.PasswordHash, user.GoalAmount, user.ID)
	if err != nil {
		return fmt.Errorf("could not update user: %v", err)
	}
	return nil
}
