// File: /services/errors.go
package services

import "errors"

var (
	// ErrMissingSpec is returned when a calculation requires a specification
	// record (or one of its fields) that is not available for the bike.
	ErrMissingSpec = errors.New("bike specifications not available")

	// ErrInvalidInput is returned when a caller-supplied parameter is
	// outside its valid domain.
	ErrInvalidInput = errors.New("invalid input")
)
