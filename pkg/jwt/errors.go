package jwttoken

import (
	"errors"
	"fmt"
)

var ErrMissingEmail = errors.New("token payload has no email")

type ErrConfig struct{ Msg string }

func (e ErrConfig) Error() string { return "jwt config error: " + e.Msg }

type ErrInvalidToken struct{ Err error }

func (e ErrInvalidToken) Error() string { return fmt.Sprintf("invalid token: %v", e.Err) }
func (e ErrInvalidToken) Unwrap() error { return e.Err }
