package appointment

import "errors"

var (
	ErrInvalidID     = errors.New("appointment id is not a valid object id")
	ErrEmailRequired = errors.New("appointment email is required")
	ErrEmailMismatch = errors.New("email does not match the authenticated user")

	ErrUnauthenticated = errors.New("no authenticated caller")
)
