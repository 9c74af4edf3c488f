package user

import (
	"errors"
	"strings"
)

var (
	ErrAlreadyExists   = errors.New("user id already taken")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

const MaxUserIDLength = 64

// UserID is the opaque string key users log in with.
type UserID struct {
	value string
}

func NewUserID(s string) (UserID, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxUserIDLength || strings.ContainsAny(s, " \t\n") {
		return UserID{}, ErrInvalidUserID
	}
	return UserID{value: s}, nil
}

func (u UserID) Value() string { return u.value }

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string { return string(r) }

type Credentials struct {
	userID   UserID
	password Password
}

func NewCredentials(userID, password string) (Credentials, error) {
	id, err := NewUserID(userID)
	if err != nil {
		return Credentials{}, err
	}
	pw, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{userID: id, password: pw}, nil
}

func (c Credentials) UserID() UserID     { return c.userID }
func (c Credentials) Password() Password { return c.password }
