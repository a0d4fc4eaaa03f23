// Package password provides one-way password hashing for the auth feature.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor, matching the service this one replaces.
const Cost = 10

// Hasher hashes plaintext passwords and verifies them against stored digests.
type Hasher interface {
	// Hash produces a salted, irreversible digest of plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest.
	Verify(plaintext, digest string) (bool, error)
}

// Bcrypt implements Hasher using the bcrypt algorithm. Every Hash call
// embeds a fresh random salt, so hashing the same input twice yields two
// different digests.
type Bcrypt struct {
	cost int
}

// Bcrypt must satisfy Hasher.
var _ Hasher = (*Bcrypt)(nil)

// NewBcrypt returns a Bcrypt hasher with the default cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: Cost}
}

// Hash produces a salted bcrypt digest of plaintext.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is a normal
// false result, not an error; an error is returned only for malformed
// digests. bcrypt compares the full digest regardless of where a mismatch
// occurs, so the comparison does not leak through timing.
func (b *Bcrypt) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("malformed password digest: %w", err)
	}
}
