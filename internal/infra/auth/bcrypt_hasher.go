package auth

import (
	"golang.org/x/crypto/bcrypt"

	"tripmap/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted hash from a plaintext passcode.
func (h *bcryptHasher) Hash(passcode string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(passcode), h.cost)

	return string(bytes), err
}

// Check compares a plaintext passcode with a bcrypt hash.
func (h *bcryptHasher) Check(passcode, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}
