package domain

import (
	"errors"
	"time"
)

// User models a registered account. PasswordHash carries the bcrypt digest
// (salt embedded in the encoding) and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Public returns a copy with the password digest stripped. Applied before a
// user is attached to a request context or rendered in a response.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

var ErrMissingFields = errors.New("missing required fields")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotAuthorized = errors.New("not authorized")
