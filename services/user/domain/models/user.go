package models

import (
	"fmt"
	"strings"
	"time"
)

// User is an account identified by its lower-cased username. Usernames are
// normalized at registration so the sharing protocol's lookups stay
// case-consistent everywhere.
type User struct {
	Username     string
	PasswordHash []byte // bcrypt
	CreatedAt    time.Time
}

const (
	minUsernameLength = 3
	maxUsernameLength = 64
)

// NormalizeUsername trims surrounding whitespace and lower-cases the login.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewUser constructs a User with a normalized username. The password hash is
// produced by the application service; the domain never sees plaintext.
func NewUser(username string, passwordHash []byte) (*User, error) {
	username = NormalizeUsername(username)
	if len(username) < minUsernameLength {
		return nil, fmt.Errorf("username must be at least %d characters", minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return nil, fmt.Errorf("username must not exceed %d characters", maxUsernameLength)
	}
	if strings.ContainsAny(username, " \t\n") {
		return nil, fmt.Errorf("username must not contain whitespace")
	}
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
