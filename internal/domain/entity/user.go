package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash; the plaintext password never leaves
// the request that carried it.
type User struct {
	ID           int64
	FullName     string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
