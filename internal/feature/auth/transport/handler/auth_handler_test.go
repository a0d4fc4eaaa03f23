package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	LoginFunc    func(ctx context.Context, email, password string) (*usecase.AuthResult, error)
}

// Register is the mock implementation of the Register method.
func (m *mockAuthUsecase) Register(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return nil, errors.New("registration failed") // Default: failure
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, errors.New("login failed") // Default: failure
}

func successResult(email string) *usecase.AuthResult {
	return &usecase.AuthResult{
		Token: "dummy-jwt-token",
		User: &entity.User{
			ID:       "b5a4d120-9a3e-4a88-9f30-000000000001",
			Email:    email,
			Password: "hashed",
		},
	}
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      gin.H
		mockRegisterFunc func(ctx context.Context, email, password string) (*usecase.AuthResult, error)
		expectedStatus   int
		expectedMessage  string
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"email": "a@x.com", "password": "secret"},
			mockRegisterFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return successResult(email), nil
			},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "User registered successfully",
		},
		{
			name:             "failure: invalid email address",
			requestBody:      gin.H{"email": "invalid-email", "password": "secret"},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedMessage:  "Invalid request body",
		},
		{
			name:             "failure: missing password",
			requestBody:      gin.H{"email": "a@x.com"},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedMessage:  "Invalid request body",
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"email": "a@x.com", "password": "secret"},
			mockRegisterFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return nil, domain.ErrUserAlreadyExists
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "User already exists",
		},
		{
			name:        "failure: internal error",
			requestBody: gin.H{"email": "a@x.com", "password": "secret"},
			mockRegisterFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return nil, errors.New("database unreachable")
			},
			expectedStatus: http.StatusInternalServerError,
			// Internal error detail is hidden
			expectedMessage: "Error registering user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegisterFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/auth/register", handler.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMessage, responseBody["message"])

			if tt.expectedStatus == http.StatusCreated {
				assert.NotEmpty(t, responseBody["token"], "token should be present")
				user := responseBody["user"].(map[string]interface{})
				assert.Equal(t, "a@x.com", user["email"])
				assert.NotEmpty(t, user["id"])
				// The password hash must never be echoed
				assert.NotContains(t, user, "password")
			} else {
				assert.NotContains(t, responseBody, "token")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		requestBody     gin.H
		mockLoginFunc   func(ctx context.Context, email, password string) (*usecase.AuthResult, error)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "a@x.com", "password": "secret"},
			mockLoginFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return successResult(email), nil
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Login successful",
		},
		{
			name:            "failure: invalid email address",
			requestBody:     gin.H{"email": "invalid-email", "password": "secret"},
			mockLoginFunc:   nil, // Usecase is not called
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:        "failure: invalid credentials",
			requestBody: gin.H{"email": "a@x.com", "password": "wrong"},
			mockLoginFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return nil, domain.ErrInvalidCredentials
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid credentials",
		},
		{
			name:        "failure: internal error",
			requestBody: gin.H{"email": "a@x.com", "password": "secret"},
			mockLoginFunc: func(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
				return nil, errors.New("signer broken")
			},
			expectedStatus: http.StatusInternalServerError,
			// Internal error detail is hidden
			expectedMessage: "Error logging in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/auth/login", handler.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMessage, responseBody["message"])

			if tt.expectedStatus == http.StatusOK {
				assert.NotEmpty(t, responseBody["token"], "token should be present")
				user := responseBody["user"].(map[string]interface{})
				assert.Equal(t, "a@x.com", user["email"])
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the claims attached by the middleware", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		c.Set(jwtmw.ContextClaims, &jwtmw.Claims{
			UserID: "b5a4d120-9a3e-4a88-9f30-000000000001",
			Email:  "a@x.com",
		})

		handler.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, "b5a4d120-9a3e-4a88-9f30-000000000001", responseBody["id"])
		assert.Equal(t, "a@x.com", responseBody["email"])
	})

	t.Run("rejects a request the middleware never decorated", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)

		handler.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
