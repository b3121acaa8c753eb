package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/user"
)

// sessionCookieName is the HttpOnly cookie carrying the signed session token.
const sessionCookieName = "jwtToken"

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JWTSessionMiddleware authenticates a request from the session cookie. Every
// failure mode answers with the same 401 so callers learn nothing about why
// their session was rejected.
func (s *service) JWTSessionMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			userID, err := s.jwtManager.ValidateSessionToken(cookie.Value)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			_, err = s.userService.GetUserByID(userID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
					return
				}
				writeJSONError(w, http.StatusInternalServerError, ErrInternalError.Error())
				return
			}

			ctx := context.WithValue(r.Context(), "userID", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
