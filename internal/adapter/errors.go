package adapter

import "errors"

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrValidation   = errors.New("validation rejected")
	ErrConflict     = errors.New("national_id already registered")
	ErrNotFound     = errors.New("user not found")
)
