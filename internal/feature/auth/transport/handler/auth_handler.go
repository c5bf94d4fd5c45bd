// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"notes_backend/internal/api"
	"notes_backend/internal/feature/auth/domain/entity"
	"notes_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns the created record.
	Signup(ctx context.Context, name, email, password string) (*entity.User, error)
	// Login authenticates a user and returns a signed token on success.
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
// It depends on the AuthUsecase interface and speaks JSON in both directions.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration endpoint.
// - 400 on malformed JSON, field validation failures, or a duplicate email
// - 201 with the user projection on success
// The password hash never appears in any response.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case usecase.IsValidationError(err):
			slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("signup duplicate email", "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email already registered"})
		default:
			slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
		}
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.SignupResponse{
		Id:      user.ID,
		Name:    user.Name,
		Email:   openapi_types.Email(user.Email),
		Message: "user registered successfully",
	})
}

// Login handles the user login endpoint.
// - 400 on malformed JSON or missing fields
// - 401 on bad credentials, with no hint whether the email exists
// - 200 with a bearer token and the user projection on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case usecase.IsValidationError(err):
			slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		default:
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		}
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.LoginResponse{
		Token: token,
		User: api.UserProfile{
			Id:    user.ID,
			Name:  user.Name,
			Email: openapi_types.Email(user.Email),
		},
	})
}
