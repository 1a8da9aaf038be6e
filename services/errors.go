package services

import (
	"errors"
)

// Service error taxonomy. Controllers map these to HTTP statuses;
// anything else is an unexpected store failure.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	ErrUnauthorized    = errors.New("unauthorized")
)
