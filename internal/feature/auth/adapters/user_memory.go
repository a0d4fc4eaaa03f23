package adapters

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// userMemory is the in-memory implementation of the UserRepository
// interface: an ordered slice of users with no persistence across restarts,
// intended for tests and ephemeral environments.
//
// The mutex makes individual calls safe, but the register flow's
// check-then-create sequence is still racy across requests. That gap is
// accepted for this variant; the relational one closes it with the unique
// index on email.
type userMemory struct {
	mu    sync.Mutex
	users []entity.User
}

// Compile-time check that userMemory implements UserRepository.
var _ usecase.UserRepository = (*userMemory)(nil)

// NewUserMemory creates an empty in-memory user store.
func NewUserMemory() *userMemory {
	return &userMemory{}
}

// Create appends the user to the store and fills the server-assigned
// timestamps on the passed entity, mirroring what the relational variant
// does on insert.
func (r *userMemory) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	u.UpdatedAt = nil
	u.DeletedAt = gorm.DeletedAt{}
	r.users = append(r.users, *u)
	return nil
}

// FindByEmail retrieves the active user matching the given email.
// Soft-deleted users report domain.ErrUserNotFound like unknown ones.
func (r *userMemory) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == email && !r.users[i].DeletedAt.Valid {
			// Return a copy so callers cannot mutate the stored record.
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// SoftDelete stamps DeletedAt on the active user matching the given email.
// A missing active user is not an error, and no other record is touched.
func (r *userMemory) SoftDelete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == email && !r.users[i].DeletedAt.Valid {
			r.users[i].DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
			return nil
		}
	}
	return nil
}
