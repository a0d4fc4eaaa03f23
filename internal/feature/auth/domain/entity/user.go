// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user, assigned once at creation.
	ID string `gorm:"primaryKey;size:36"`

	// Email is the user's email address used for authentication.
	// It is compared byte-for-byte (case-sensitive) and must be unique
	// across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp of the last in-place mutation. It stays
	// nil until the record is updated, which no current operation does.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`

	// DeletedAt marks the user as logically removed. Soft-deleted users are
	// excluded from every lookup but the row is never physically removed.
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
