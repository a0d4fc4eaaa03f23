// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns a signed token with it.
	Register(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	// Login authenticates a user and returns a signed token on success.
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
}

// AuthHandler handles HTTP requests for authentication operations.
// It depends on the AuthUsecase interface and maps domain errors to the
// fixed status/message pairs of the API; internal error detail never
// reaches a response body.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
// Constructor for dependency injection.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
//   - 400 with "Invalid request body" on a binding failure
//   - 400 with "User already exists" when the email is taken
//   - 500 with "Error registering user" on any internal failure
//   - 201 with token and public user view on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResp{Message: "Invalid request body"})
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			slog.Warn("register rejected: email taken", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.MessageResp{Message: "User already exists"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.MessageResp{Message: "Error registering user"})
		return
	}

	slog.Info("user registered", "email", result.User.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthResp{
		Message: "User registered successfully",
		Token:   result.Token,
		User:    dto.UserResp{ID: result.User.ID, Email: result.User.Email},
	})
}

// Login handles the user login endpoint.
//   - 400 with "Invalid request body" on a binding failure
//   - 401 with "Invalid credentials" when authentication fails, whether the
//     email is unknown, soft-deleted or the password is wrong
//   - 500 with "Error logging in" on any internal failure
//   - 200 with token and public user view on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.MessageResp{Message: "Invalid request body"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Do not reveal which part of the credentials was wrong.
			slog.Warn("login rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.MessageResp{Message: "Invalid credentials"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.MessageResp{Message: "Error logging in"})
		return
	}

	slog.Info("user login successful", "email", result.User.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResp{
		Message: "Login successful",
		Token:   result.Token,
		User:    dto.UserResp{ID: result.User.ID, Email: result.User.Email},
	})
}

// Me handles the protected endpoint reporting the identity carried by the
// verified bearer token. It runs behind the token verification middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := jwtmw.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.MessageResp{Message: "Unauthorized!"})
		return
	}

	c.JSON(http.StatusOK, dto.UserResp{ID: claims.UserID, Email: claims.Email})
}
