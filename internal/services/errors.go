package services

import "errors"

// Domain errors surfaced to the request boundary. Handlers match these with
// errors.Is and decide the response shape; anything else is a storage error
// that aborts the request with a generic 500.
var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmailTaken       = errors.New("email already registered")
	ErrUnknownEmail     = errors.New("email not registered")
	ErrBadPassword      = errors.New("incorrect password")
	ErrLabNotFound      = errors.New("lab not found")
)
