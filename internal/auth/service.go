package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Login(email, password string) (*user.User, string, error)
	JWTSessionMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(currPassword))
	return err == nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *service) Login(email, password string) (*user.User, string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		log.Println("error when getting user from database:", err)
		return nil, "", ErrInternalError
	}

	if !doPasswordsMatch(existingUser.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	jwtToken, err := s.jwtManager.GenerateSessionJWT(existingUser.ID, defaultSessionDuration)
	if err != nil {
		log.Println("error during JWT generation:", err)
		return nil, "", ErrInternalError
	}

	return existingUser, jwtToken, nil
}
