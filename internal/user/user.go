package user

import "errors"

var (
	// ErrNotFound is returned by repositories when no user has the email.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAuthenticationFailed covers both unknown email and wrong password.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// User is a registered account in tb_users. PasswordHash holds a bcrypt hash.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}
