package identity

import "time"

// User represents a registered portal user.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash []byte
	TokenVersion int
	CreatedAt    time.Time
	LastLogin    time.Time
}

// Credentials carries a login or registration attempt.
type Credentials struct {
	Email    string
	Password string
	FullName string
}
