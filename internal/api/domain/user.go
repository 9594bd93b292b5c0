package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
}
