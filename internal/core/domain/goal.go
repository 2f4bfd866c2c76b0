package domain

import (
	"errors"
	"time"
)

// Goal is an owned record. UserID references the creating user and is
// immutable after creation; every mutation path must prove ownership first.
type Goal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ErrGoalNotFound = errors.New("goal not found")

// OwnedBy reports whether the goal belongs to the given user.
func (g *Goal) OwnedBy(userID string) bool {
	return g.UserID == userID
}
