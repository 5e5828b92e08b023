// Package models holds the persisted user record and the shapes derived
// from it.
package models

import (
	"time"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/google/uuid"
)

// User is a row of the users table. Password is always a bcrypt hash.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser builds a record for a new account with a fresh id.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: passwordHash,
	}
}

// UserView is the only user shape returned to clients.
type UserView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// View returns u with its password hash masked.
func (u *User) View() UserView {
	return UserView{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Password: common.MaskedPassword,
	}
}
