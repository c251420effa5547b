package user

import "errors"

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailAlreadyExists = errors.New("a user with this email already exists")
)
