package mentor

import "errors"

var (
	ErrNotFound           = errors.New("mentor not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
