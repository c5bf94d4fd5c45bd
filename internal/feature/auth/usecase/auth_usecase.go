package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notes_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer defines the interface for signed token generation.
type TokenIssuer interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// PasswordHasher abstracts one-way password hashing and verification.
type PasswordHasher interface {
	// Hash returns the salted hash of the plaintext.
	Hash(plaintext string) (string, error)
	// Verify reports whether the plaintext matches the stored hash.
	Verify(plaintext, hashed string) bool
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	hasher PasswordHasher
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, hasher PasswordHasher) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

// normalizeEmail trims surrounding whitespace and lower-cases the address so
// every comparison and every stored value uses the same form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dummyHash keeps login timing uniform when the email is unknown:
// a bcrypt comparison runs whether or not the user exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Signup validates and registers a new user with a hashed password.
// The created user is returned so the handler can project id/name/email.
func (u *authUsecase) Signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Pre-check for a friendly error on the common path. The unique index
	// still backs this up: a concurrent signup racing past the check makes
	// Create fail, and the adapter translates that to ErrEmailAlreadyExists.
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a signed token on success.
// Unknown email and wrong password both yield ErrInvalidCredentials, and a
// hash comparison always runs to keep the two cases timing-uniform.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", nil, ErrEmailRequired
	}
	if password == "" {
		return "", nil, ErrPasswordRequired
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		// Storage failure, not a credential problem.
		return "", nil, err
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	match := u.hasher.Verify(password, passwordHash)
	if err != nil || !match {
		return "", nil, ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, user, nil
}
