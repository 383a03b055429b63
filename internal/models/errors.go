package models

import "errors"

var (
	// ErrNotFound is returned when a record with the given id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyRegistered is returned when a demo request for the mobile already exists.
	ErrAlreadyRegistered = errors.New("already registered")
)
