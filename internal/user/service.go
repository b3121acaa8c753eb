package user

import (
	"errors"
	"time"

	"github.com/badoux/checkmail"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrInvalidUserData    = errors.New("email and password are required")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInternalError      = errors.New("internal Server Error")
)

type User struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	GoalAmount   decimal.Decimal `json:"goalAmount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ProfileUpdate carries a partial profile change. Zero-valued fields are left
// untouched; GoalAmount is only applied when positive.
type ProfileUpdate struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	GoalAmount decimal.Decimal `json:"goalAmount"`
}

type Service interface {
	Register(name, email, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*User, error)
	GetGoalAmount(userID string) (decimal.Decimal, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func (s *service) Register(name, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidUserData
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}

	_, err := s.repo.getUserByEmail(email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, ErrInternalError
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}

	newUser := &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		GoalAmount:   decimal.Zero,
	}
	if err := s.repo.createUser(newUser); err != nil {
		return nil, ErrInternalError
	}
	return newUser, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}

func (s *service) GetUserByEmail(email string) (*User, error) {
	return s.repo.getUserByEmail(email)
}

// UpdateProfile applies the non-empty fields of the update. Each field is
// written only when the corresponding input is present: name and password
// when non-blank, email when non-blank and not taken by another user,
// goal amount when positive.
func (s *service) UpdateProfile(userID string, update ProfileUpdate) (*User, error) {
	existingUser, err := s.repo.getUserByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Email != "" && update.Email != existingUser.Email {
		taken, err := s.repo.emailExists(update.Email, userID)
		if err != nil {
			return nil, ErrInternalError
		}
		if taken {
			return nil, ErrEmailAlreadyExists
		}
		existingUser.Email = update.Email
	}

	if update.Name != "" {
		existingUser.Name = update.Name
	}

	if update.Password != "" {
		passwordHash, err := hashPassword(update.Password)
		if err != nil {
			return nil, ErrInternalError
		}
		existingUser.PasswordHash = passwordHash
	}

	if update.GoalAmount.IsPositive() {
		existingUser.GoalAmount = update.GoalAmount
	}

	if err := s.repo.updateUser(existingUser); err != nil {
		return nil, ErrInternalError
	}
	return existingUser, nil
}

// GetGoalAmount returns the stored savings goal, or zero when the user record
// is missing.
func (s *service) GetGoalAmount(userID string) (decimal.Decimal, error) {
	existingUser, err := s.repo.getUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return existingUser.GoalAmount, nil
}
