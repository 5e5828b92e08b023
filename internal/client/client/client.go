package client

import (
	"context"
)

// User is the account as the server reports it. Password is always masked.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Reply is a successful non-login response.
type Reply struct {
	Status  int
	Message string
}

// Session is what a successful login returns.
type Session struct {
	Token string
	User  User
}

// Profile holds the fields to change on update. Empty fields are left alone.
type Profile struct {
	Name     string
	Email    string
	Password []byte
}

type Client interface {
	Register(ctx context.Context, name, email string, password []byte) (*Reply, error)
	Login(ctx context.Context, email string, password []byte) (*Session, error)
	Update(ctx context.Context, token string, p Profile) (*Reply, error)
	Delete(ctx context.Context, token, id string) (*Reply, error)
	Ping(ctx context.Context) error
}
