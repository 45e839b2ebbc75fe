package entity

import (
	"time"
)

// UserID identifies a registered identity. It is opaque to everything but the store.
type UserID string

func (id UserID) String() string { return string(id) }

// User is the aggregate root for the identity domain
// Passwords are stored as bcrypt hashes in PasswordHash
//
// A User is created once at registration and never mutated afterwards.
type User struct {
	ID           UserID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserView is a User without credentials, safe to hand to clients.
type UserView struct {
	ID        UserID    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"date"`
}

// View strips the password hash.
func (u *User) View() *UserView {
	return &UserView{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
