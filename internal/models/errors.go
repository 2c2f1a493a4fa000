package models

import "errors"

// Storage-level sentinel errors returned by repositories.
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)
