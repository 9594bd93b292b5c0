package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shkapi/storefront/internal/api/domain"
	"github.com/shkapi/storefront/internal/api/store"
	"github.com/shkapi/storefront/pkg/cryptox"
	"github.com/shkapi/storefront/pkg/idx"
	"github.com/shkapi/storefront/pkg/jwtx"
	"github.com/shkapi/storefront/pkg/slogx"
)

var (
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// AuthService owns registration and login. The signer and TTL are immutable
// after startup; the service itself holds no mutable state.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// dummyPasswordHash is verified against when the username is unknown, so a
// failed login takes the same time whether or not the account exists.
func dummyPasswordHash() string {
	dummyOnce.Do(func() {
		dummyHash, _ = cryptox.HashPassword("storefront.dummy.credential")
	})
	return dummyHash
}

// Register creates a credential record for a new username. The store's
// unique constraint is the authority on duplicates; the preliminary lookup
// only exists to answer the common case without burning a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	_, err := s.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.User{}, ErrUsernameTaken
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, fmt.Errorf("lookup username: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		// Lost a race with a concurrent registration of the same username.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	l.Info("user registered", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// Login verifies the credentials and issues a signed session token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	userExists := true
	targetHash := u.PasswordHash

	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("lookup username: %w", err)
		}
		userExists = false
		targetHash = dummyPasswordHash()
	}

	ok, err := cryptox.CheckPassword(password, targetHash)
	if err != nil {
		if !userExists {
			return "", ErrInvalidCredentials
		}
		// Stored hash is corrupt; that's our problem, not the caller's.
		l.Error("stored password hash unverifiable", "user_id", u.ID, "err", err)
		return "", fmt.Errorf("verify password: %w", err)
	}

	if !userExists || !ok {
		return "", ErrInvalidCredentials
	}

	claims := jwtx.NewSessionClaims(u.ID, u.Username, s.Issuer, s.TokenTTL, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	l.Info("login successful", "user_id", u.ID)
	return token, nil
}
