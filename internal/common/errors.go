// Package common defines shared sentinel errors used across artvault client
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("not found")

	// Local validation errors. These are produced before any network call
	// and are never sent to the server.
	ErrNoWalletAddress    = errors.New("wallet address is empty")
	ErrUserNotResolved    = errors.New("user not resolved")
	ErrNothingStaged      = errors.New("no file staged")
	ErrEmptyTitle         = errors.New("title is empty")
	ErrUploadInFlight     = errors.New("upload already in progress")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrUsernameTaken      = errors.New("username is not available")
	ErrUsernameNotChecked = errors.New("username availability not confirmed")
)
