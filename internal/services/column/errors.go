package column

import "errors"

// Column-related errors
var (
	// Validation errors
	ErrEmptyName       = errors.New("column name cannot be empty")
	ErrNameTooLong     = errors.New("column name cannot exceed 100 characters")
	ErrUnknownColor    = errors.New("color must be a palette name or #RRGGBB value")
	ErrInvalidColumnID = errors.New("invalid column ID")
)
