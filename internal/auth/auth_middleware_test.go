package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sebuszqo/FinanceTracker/internal/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserService struct {
	user *user.User
	err  error
}

func (m *mockUserService) Register(name, email, password string) (*user.User, error) {
	return m.user, m.err
}

func (m *mockUserService) GetUserByID(userID string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserService) UpdateProfile(userID string, update user.ProfileUpdate) (*user.User, error) {
	return m.user, m.err
}

func (m *mockUserService) GetGoalAmount(userID string) (decimal.Decimal, error) {
	return decimal.Zero, m.err
}

func newTestService(t *testing.T, userService user.Service) (Service, JWTManagerInterface) {
	t.Setenv("JWT_SECRET", "test-secret")
	jwtManager := NewJWTManager()
	return NewAuthService(userService, jwtManager), jwtManager
}

func TestJWTSessionMiddleware_ValidCookie(t *testing.T) {
	service, jwtManager := newTestService(t, &mockUserService{user: &user.User{ID: "user-123"}})

	token, err := jwtManager.GenerateSessionJWT("user-123", defaultSessionDuration)
	require.NoError(t, err)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value("userID").(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	w := httptest.NewRecorder()

	service.JWTSessionMiddleware()(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "user-123", gotUserID)
}

func TestJWTSessionMiddleware_MissingCookie(t *testing.T) {
	service, _ := newTestService(t, &mockUserService{user: &user.User{ID: "user-123"}})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	w := httptest.NewRecorder()

	service.JWTSessionMiddleware()(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestJWTSessionMiddleware_InvalidToken(t *testing.T) {
	service, _ := newTestService(t, &mockUserService{user: &user.User{ID: "user-123"}})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not-a-token"})
	w := httptest.NewRecorder()

	service.JWTSessionMiddleware()(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestJWTSessionMiddleware_UnknownUser(t *testing.T) {
	service, jwtManager := newTestService(t, &mockUserService{err: user.ErrUserNotFound})

	token, err := jwtManager.GenerateSessionJWT("ghost-user", defaultSessionDuration)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	w := httptest.NewRecorder()

	service.JWTSessionMiddleware()(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}
