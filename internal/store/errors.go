package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when a signup email is already registered.
var ErrEmailTaken = errors.New("email already registered")
