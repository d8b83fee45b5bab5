package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AuthMode selects which form the auth view submits.
type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeRegister
)

// Validation failures surfaced verbatim to the user.
var (
	ErrFieldsRequired   = errors.New("All fields are required.")
	ErrInvalidEmail     = errors.New("Invalid email address.")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters long.")
)

// Credentials is the ephemeral login/registration form state. It is
// cleared after each submit attempt and never persisted.
type Credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate runs the pre-network checks in order, short-circuiting on the
// first failure. Name is only required when registering.
func (c *Credentials) Validate(mode AuthMode) error {
	if strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Password) == "" ||
		(mode == ModeRegister && strings.TrimSpace(c.Name) == "") {
		return ErrFieldsRequired
	}
	if err := validate.Var(c.Email, "email"); err != nil {
		return ErrInvalidEmail
	}
	if len(c.Password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}
