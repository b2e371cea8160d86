package handlers_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"noteshop/pkg/claims"
	"noteshop/pkg/handlers"
	"noteshop/pkg/user"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(form user.RegisterForm) (*user.User, error) {
	args := m.Called(form)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Login(username, password string) (*user.User, error) {
	args := m.Called(username, password)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Logout(userID string) error {
	return m.Called(userID).Error(0)
}

var testClaims = func() *claims.Claims {
	c := &claims.Claims{}
	c.User.ID = "user123"
	c.User.Name = "Test User"
	c.User.Email = "test@example.com"
	c.User.Role = claims.RoleRegular
	return c
}()

func withClaims(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), claims.TokenContextKey, testClaims)
	return req.WithContext(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
}

func TestLoginHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	m := new(mockUserService)

	m.On("Login", "validuser", "correct").Return(&user.User{ID: "id", Username: "validuser", Email: "v@example.com"}, nil)
	m.On("Login", "wronguser", "correct").Return(nil, errors.New("user not found"))
	m.On("Login", "validuser", "wrong").Return(nil, errors.New("invalid credentials"))

	handler := handlers.NewUserHandler(m, testLogger())

	tests := []struct {
		name           string
		body           string
		contentType    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Successful login",
			body:           `{"username":"validuser","password":"correct"}`,
			contentType:    "application/json",
			expectedStatus: http.StatusOK,
			expectedBody:   "token",
		},
		{
			name:           "User not found",
			body:           `{"username":"wronguser","password":"correct"}`,
			contentType:    "application/json",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "user not found",
		},
		{
			name:           "Invalid credentials",
			body:           `{"username":"validuser","password":"wrong"}`,
			contentType:    "application/json",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "invalid password",
		},
		{
			name:           "Bad Content-Type",
			body:           `{"username":"validuser","password":"wrong"}`,
			contentType:    "plain/text",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid Content-Type"}`,
		},
		{
			name:           "Bad JSON",
			body:           `{"username" oops "validuser","password":"wrong"}`,
			contentType:    "application/json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"bad json"}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(test.body))
			req.Header.Set("Content-Type", test.contentType)

			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, test.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), test.expectedBody)
		})
	}

	m.AssertExpectations(t)
}

func TestRegisterHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	m := new(mockUserService)

	m.On("Register", mock.MatchedBy(func(f user.RegisterForm) bool { return f.Username == "validuser" })).
		Return(&user.User{ID: "id", Username: "validuser", Email: "v@example.com"}, nil)
	m.On("Register", mock.MatchedBy(func(f user.RegisterForm) bool { return f.Username == "existinguser" })).
		Return(nil, errors.New("user already exists"))
	m.On("Register", mock.MatchedBy(func(f user.RegisterForm) bool { return f.Username == "reusedemail" })).
		Return(nil, errors.New("email already taken"))
	m.On("Register", mock.MatchedBy(func(f user.RegisterForm) bool { return f.Username == "brokenuser" })).
		Return(nil, errors.New("unexpected error"))

	handler := handlers.NewUserHandler(m, testLogger())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Successful registration",
			body:           `{"username":"validuser","email":"v@example.com","password":"correct"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   "token",
		},
		{
			name:           "Username taken",
			body:           `{"username":"existinguser","email":"e@example.com","password":"correct"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "already exists",
		},
		{
			name:           "Email taken",
			body:           `{"username":"reusedemail","email":"v@example.com","password":"correct"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "already taken",
		},
		{
			name:           "Service failure",
			body:           `{"username":"brokenuser","email":"b@example.com","password":"correct"}`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "unexpected error",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, test.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), test.expectedBody)
		})
	}

	m.AssertExpectations(t)
}

func TestLogoutHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m := new(mockUserService)
		m.On("Logout", "user123").Return(nil)
		handler := handlers.NewUserHandler(m, testLogger())

		req := withClaims(httptest.NewRequest(http.MethodPost, "/api/logout", nil))
		rr := httptest.NewRecorder()

		handler.Logout(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "success")
		m.AssertExpectations(t)
	})

	t.Run("missing claims", func(t *testing.T) {
		handler := handlers.NewUserHandler(new(mockUserService), testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		rr := httptest.NewRecorder()

		handler.Logout(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("session invalidation fails", func(t *testing.T) {
		m := new(mockUserService)
		m.On("Logout", "user123").Return(errors.New("db down"))
		handler := handlers.NewUserHandler(m, testLogger())

		req := withClaims(httptest.NewRequest(http.MethodPost, "/api/logout", nil))
		rr := httptest.NewRecorder()

		handler.Logout(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
