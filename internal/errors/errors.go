package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserNotPersisted  = errors.New("user has no assigned id")
)
