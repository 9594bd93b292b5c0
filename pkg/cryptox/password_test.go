package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.True(t, strings.HasPrefix(hash, "$2a$"), "hash should be bcrypt encoded")

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, HashCost, cost)
		})
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects passwords beyond 72 bytes rather than silently truncating.
	_, err := HashPassword(strings.Repeat("a", 100))
	require.Error(t, err)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	password := "samepassword"

	hash1, err := HashPassword(password)
	require.NoError(t, err)

	hash2, err := HashPassword(password)
	require.NoError(t, err)

	// Each hash should be different due to unique salts
	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")

	// But all should verify the same password
	for _, h := range []string{hash1, hash2} {
		ok, err := CheckPassword(password, h)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name          string
		wrongPassword string
	}{
		{"completely wrong", "wrong-password"},
		{"case difference", "Correct-Password"},
		{"extra space", "correct-password "},
		{"empty password", ""},
		{"similar password", "correct-passwor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := CheckPassword(tt.wrongPassword, hash)
			require.NoError(t, err, "mismatch must not be an error")
			require.False(t, ok)
		})
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name        string
		invalidHash string
	}{
		{"empty hash", ""},
		{"not a hash", "plaintext"},
		{"wrong prefix", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"truncated", "$2a$10$tooshort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := CheckPassword("whatever", tt.invalidHash)
			require.False(t, ok)
			require.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}
