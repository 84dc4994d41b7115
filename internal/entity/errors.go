package entity

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid book status")
	ErrBookNotFound    = errors.New("book not found")
	ErrMalformedRecord = errors.New("malformed book record")
	ErrDuplicateID     = errors.New("book with this id already exists")
)
