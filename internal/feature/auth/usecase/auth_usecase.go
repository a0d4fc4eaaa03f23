// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/domain/entity"

	"github.com/google/uuid"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage and fills the
	// server-assigned fields on the passed entity. When a concurrent insert
	// wins the race for the same email, the store returns
	// domain.ErrDuplicateEmail instead of silently overwriting.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the active user matching the given email.
	// Soft-deleted users are never returned; both an unknown email and a
	// soft-deleted one report domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// SoftDelete marks the active user matching the given email as deleted.
	// It is a no-op, not an error, when no active user matches.
	SoftDelete(ctx context.Context, email string) error
}

// TokenIssuer defines the interface for issuing signed tokens.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/jwt).
type TokenIssuer interface {
	// Issue creates a signed JWT token for the given user.
	Issue(userID, email string) (string, error)
}

// PasswordHasher hashes passwords and verifies them against stored digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}

// AuthResult is returned by Register and Login on success.
type AuthResult struct {
	Token string
	User  *entity.User
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	hasher PasswordHasher
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, hasher PasswordHasher) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

// Register creates a new user with a hashed password and returns a signed
// token together with the persisted user.
// An email that is already taken is reported as domain.ErrUserAlreadyExists;
// every other failure propagates so the transport layer can answer with its
// generic server error.
func (u *authUsecase) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	_, err := u.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		// Two registrations can pass the existence check concurrently; the
		// losing insert surfaces here as a duplicate.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// dummyDigest is a valid bcrypt digest of no known password, compared
// against when the user lookup misses. It guarantees a password
// verification always runs, so an unknown email is not observable through
// response timing.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user and returns a signed token on success.
// Unknown email, soft-deleted user and wrong password all yield the same
// domain.ErrInvalidCredentials, indistinguishable to the caller.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	digest := dummyDigest
	if err == nil {
		digest = user.Password
	}

	// Always verify a password, even on a lookup miss.
	ok, verifyErr := u.hasher.Verify(password, digest)
	if verifyErr != nil {
		return nil, fmt.Errorf("failed to verify password: %w", verifyErr)
	}
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.Issue(user.ID, user.Email)
	if tokenErr != nil {
		return nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Deactivate soft-deletes the user matching the given email. It is a no-op
// when no active user matches; the user's row stays in storage but every
// subsequent lookup and login behaves as if the user never existed.
func (u *authUsecase) Deactivate(ctx context.Context, email string) error {
	if err := u.users.SoftDelete(ctx, email); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}
