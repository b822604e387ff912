package staff

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidRole  = errors.New("invalid staff role")
	ErrInvalidEmail = errors.New("invalid email address")
)

type Role string

const (
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Email{}, ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}
