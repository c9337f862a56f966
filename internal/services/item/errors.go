package item

import "errors"

// Item-related errors
var (
	// Validation errors
	ErrEmptyTitle       = errors.New("item title cannot be empty")
	ErrTitleTooLong     = errors.New("item title cannot exceed 255 characters")
	ErrInvalidItemID    = errors.New("invalid item ID")
	ErrInvalidBoardKind = errors.New("unknown board kind")
	ErrInvalidPriority  = errors.New("priority must be low, medium, or high")
	ErrInvalidStatus    = errors.New("item status cannot be empty")
)
