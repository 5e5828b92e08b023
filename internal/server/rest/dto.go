package rest

import (
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/services"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,account_email"`
	Password string `json:"password" validate:"required,account_password"`
}

func (r RegisterRequest) input() services.RegisterInput {
	return services.RegisterInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,account_email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) input() services.LoginInput {
	return services.LoginInput{Email: r.Email, Password: r.Password}
}

// UpdateRequest fields are optional; empty strings count as absent.
type UpdateRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2"`
	Email    string `json:"email" validate:"omitempty,account_email"`
	Password string `json:"password" validate:"omitempty,account_password"`
}

func (r UpdateRequest) input() services.UpdateInput {
	return services.UpdateInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

// Response is the body of every reply except a successful login.
type Response struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Detail  string            `json:"detail,omitempty"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    models.UserView `json:"user"`
}
