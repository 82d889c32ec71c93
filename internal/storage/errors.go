package storage

import "errors"

// Common storage errors
var (
	// ErrRecordNotFound indicates that record was not found in storage
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnsupportedOperator indicates that a filter condition uses an unknown operator
	ErrUnsupportedOperator = errors.New("unsupported relational operator")

	// ErrInvalidFilter indicates that filter paging bounds are inconsistent
	ErrInvalidFilter = errors.New("invalid filter")
)
