package sqlite

import (
	"context"

	"github.com/shkapi/storefront/internal/api/domain"
)

type usersRepo struct {
	db dbtx
}

const getUserByIDSQL = `
SELECT id, username, password_hash, created_at
FROM users
WHERE id = ?`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, getUserByIDSQL, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

const getUserByUsernameSQL = `
SELECT id, username, password_hash, created_at
FROM users
WHERE username = ?`

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, getUserByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

const createUserSQL = `
INSERT INTO users (id, username, password_hash, created_at)
VALUES (?, ?, ?, ?)`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, createUserSQL,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}
