package models

import "errors"

// Domain-specific errors shared across board operations
var (
	// ErrLastColumn indicates an attempt to remove the only remaining column
	ErrLastColumn = errors.New("cannot remove the last remaining column")

	// ErrColumnNotFound indicates the referenced column does not exist
	ErrColumnNotFound = errors.New("column not found")

	// ErrItemNotFound indicates the referenced item does not exist
	ErrItemNotFound = errors.New("item not found")

	// ErrMoveInFlight indicates a second move was requested for an item
	// whose previous move has not resolved yet
	ErrMoveInFlight = errors.New("a move for this item is already pending")

	// ErrUnknownBoard indicates an unrecognized board kind
	ErrUnknownBoard = errors.New("unknown board kind")
)
