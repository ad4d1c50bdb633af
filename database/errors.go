package database

import "errors"

// Error kinds surfaced at the API boundary. Storage-level failures (duplicate
// keys, missing rows) are translated into these; raw gorm errors never leave
// this package.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("forbidden")
)
