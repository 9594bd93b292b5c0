package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor applied to every new hash.
const HashCost = 10

// ErrMalformedHash reports a stored hash that is structurally corrupt and
// can never be verified against. A plain mismatch is not an error.
var ErrMalformedHash = errors.New("cryptox: malformed password hash")

// HashPassword generates a salted bcrypt hash of the password. The salt is
// randomised per call, so hashing the same plaintext twice yields different
// outputs.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
// It returns (true, nil) on match and (false, nil) on mismatch; only a
// structurally corrupt hash yields an error, wrapping ErrMalformedHash.
func CheckPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}
