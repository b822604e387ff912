package staff

import "errors"

var ErrEmptyPassword = errors.New("password cannot be empty")

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Credentials is the login input pair, validated at construction so the auth
// flow never sees malformed values.
type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
