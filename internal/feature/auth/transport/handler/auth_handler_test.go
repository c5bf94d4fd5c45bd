package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes_backend/internal/feature/auth/domain/entity"
	"notes_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, name, email, password string) (*entity.User, error)
	LoginFunc  func(ctx context.Context, email, password string) (string, *entity.User, error)
}

// Signup is the mock implementation of the Signup method.
func (m *mockAuthUsecase) Signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, email, password)
	}
	return &entity.User{ID: 1, Name: name, Email: email}, nil
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "mock-jwt-token", &entity.User{ID: 1, Email: email}, nil
}

// TestMain sets gin to test mode before running the tests.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// postJSON performs a JSON POST against the given handler.
func postJSON(t *testing.T, handlerFunc gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handlerFunc(c)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("successful signup returns 201 with projection", func(t *testing.T) {
		mock := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return &entity.User{ID: 7, Name: "Ann", Email: "ann@example.com", Password: "$2a$10$hash"}, nil
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Signup, "/signup", `{"name":"Ann","email":"ann@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(7), resp["id"])
		assert.Equal(t, "Ann", resp["name"])
		assert.Equal(t, "ann@example.com", resp["email"])
		assert.NotContains(t, strings.ToLower(w.Body.String()), "hash", "password hash must never be serialized")
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := postJSON(t, h.Signup, "/signup", `{not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation failures return 400 with the field message", func(t *testing.T) {
		tests := []struct {
			name    string
			ucErr   error
			wantMsg string
		}{
			{"missing name", usecase.ErrNameRequired, "name is required"},
			{"missing email", usecase.ErrEmailRequired, "email is required"},
			{"missing password", usecase.ErrPasswordRequired, "password is required"},
			{"short password", usecase.ErrPasswordTooShort, "password must be at least 6 characters"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mock := &mockAuthUsecase{
					SignupFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
						return nil, tt.ucErr
					},
				}
				h := NewAuthHandler(mock)

				w := postJSON(t, h.Signup, "/signup", `{"name":"","email":"","password":""}`)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), tt.wantMsg)
			})
		}
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		mock := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Signup, "/signup", `{"name":"Ann","email":"taken@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "email already registered")
	})

	t.Run("unexpected error returns 500 without detail", func(t *testing.T) {
		mock := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Signup, "/signup", `{"name":"Ann","email":"ann@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused", "internals must not leak")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login returns token and user", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "signed-token", &entity.User{ID: 3, Name: "Ann", Email: "ann@example.com", Password: "$2a$10$hash"}, nil
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Login, "/login", `{"email":"ann@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
			User  struct {
				Id    uint   `json:"id"`
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, uint(3), resp.User.Id)
		assert.Equal(t, "ann@example.com", resp.User.Email)
		assert.NotContains(t, w.Body.String(), "$2a$", "password hash must never be serialized")
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := postJSON(t, h.Login, "/login", `{not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid credentials return 401 with merged message", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "", nil, usecase.ErrInvalidCredentials
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Login, "/login", `{"email":"whoever@example.com","password":"whatever"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("unexpected error returns 500", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, *entity.User, error) {
				return "", nil, errors.New("db gone")
			},
		}
		h := NewAuthHandler(mock)

		w := postJSON(t, h.Login, "/login", `{"email":"a@b.com","password":"secret1"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
