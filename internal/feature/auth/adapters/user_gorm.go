// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// pgUniqueViolation is the Postgres error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// userGorm is the relational implementation of the UserRepository interface.
// It uses GORM for database operations; the users table carries a unique
// index on email, so a raced insert fails instead of overwriting.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm with the given gorm.DB
// connection. Constructor for dependency injection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create adds the user to the database and fills the server-assigned
// timestamps on the passed entity. A unique-key violation is returned as
// domain.ErrDuplicateEmail.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// isDuplicateKey reports whether err is a unique constraint violation.
// GORM translates these when TranslateError is enabled; the pgconn check
// covers connections that report the raw Postgres error instead.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// FindByEmail retrieves the active user matching the given email.
// GORM's soft delete keeps deleted rows out of the query, so a soft-deleted
// user reports domain.ErrUserNotFound exactly like an unknown one.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// SoftDelete stamps deleted_at on the active user matching the given email.
// The row stays in place; FindByEmail will no longer see it. A missing
// active user is not an error, and no other row is touched.
func (r *userGorm) SoftDelete(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&entity.User{}).Error
}
