package auth

import "errors"

var (
	ErrEmailRequired = errors.New("token payload must contain an email")
	ErrUnknownUser   = errors.New("no registered user for this email")
)
