// Package domain defines the user entity and its errors.
package domain

import (
	"time"

	"github.com/allisson/social/internal/errors"
)

// MaxUserNameLength bounds the user name as submitted, in runes.
const MaxUserNameLength = 50

// MaxStoredUserNameLength is the width of users.user_name. Escaping turns one
// rune into at most six characters (&quot;), so any valid name fits.
const MaxStoredUserNameLength = MaxUserNameLength * 6

// User is a registered account. Password is only set on the way in; it is
// hashed and compared by the store and never read back.
type User struct {
	ID          int64
	UserName    string
	Email       *string
	Password    string
	PhoneNumber string
	Biography   *string
	CreatedAt   time.Time
}

// User errors.
var (
	// ErrUserNotFound indicates the user does not exist.
	ErrUserNotFound = errors.Define(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates the user name or phone number is taken.
	ErrUserAlreadyExists = errors.Define(
		errors.ErrConflict,
		"registration failed, user name or phone may already exist",
	)

	// ErrInvalidCredentials indicates no user matches the phone number and password.
	ErrInvalidCredentials = errors.Define(errors.ErrUnauthorized, "login failed, phone or password wrong")
)
