// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the stored identity of an account: the login it signs in with and
// the bcrypt hash of its password.
type User struct {
	ID           uuid.UUID // Generated on insert.
	Login        string    // Unique across all live records.
	PasswordHash string    // Never the plaintext.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the part of a User that may be returned to clients.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Login string    `json:"login"`
}

// Public strips everything but the identifier and login.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Login: u.Login}
}
