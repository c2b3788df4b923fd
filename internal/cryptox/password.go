// Package cryptox contains the password hashing primitives used by the auth
// service.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by Hash for passwords over bcrypt's 72-byte
// input limit.
var ErrPasswordTooLong = errors.New("password must be at most 72 bytes long")

// PasswordHasher hashes and verifies passwords with bcrypt.
//
// Each Hash call draws a fresh random salt, so hashing the same password
// twice yields different strings. The salt and cost are embedded in the
// result, which is all Verify needs.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost, clamped to bcrypt's
// accepted range. Zero selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &PasswordHasher{cost: cost}
}

// Cost reports the bcrypt cost factor in use.
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash returns the encoded bcrypt hash of password.
func (h *PasswordHasher) Hash(password []byte) (string, error) {
	b, err := bcrypt.GenerateFromPassword(password, h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(b), nil
}

// Verify reports whether password matches hash. The comparison is constant
// time; a malformed hash simply fails verification.
func (h *PasswordHasher) Verify(password []byte, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), password) == nil
}

// WipeByteArray overwrites b with zeros so that passwords read from the
// terminal do not linger in memory. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
