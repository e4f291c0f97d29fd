package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateFacebookID is returned when a write would link a Facebook
	// user id that another user already holds. Backed by a unique index so
	// the guarantee holds under concurrent writers, not just under the
	// lookup-before-link check.
	ErrDuplicateFacebookID = errors.New("facebook user id already linked")

	// ErrDuplicateUsername is returned when a write would reuse a username.
	ErrDuplicateUsername = errors.New("username already taken")
)
