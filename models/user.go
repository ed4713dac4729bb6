package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7). It becomes the
	// "sub" claim of issued tokens and the owner of vault items.
	UserID string `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password carries the plaintext password of a register or login
	// request. It is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the argon2id encoded hash of the password. It is
	// never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
