package models

import (
	"strconv"
	"time"
)

// UserID identifies a registered user. A UserID obtained from the request
// context has already been verified by the auth middleware.
type UserID int64

// String returns the decimal form used as the token subject.
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// User represents a user in the system
type User struct {
	ID           UserID    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // Hidden from JSON responses
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
