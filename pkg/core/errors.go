package core

import "errors"

// Common errors.
var (
	ErrReadOnly    = errors.New("repository is in read-only mode")
	ErrMalformed   = errors.New("malformed notes document")
	ErrNotFound    = errors.New("note not found")
	ErrEmptyTitle  = errors.New("note title cannot be empty")
	ErrNotANumber  = errors.New("action is not a number")
	ErrActionRange = errors.New("action number should be between 1 and 5")
)
