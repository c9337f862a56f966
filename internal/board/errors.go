package board

import "errors"

// Drag gesture errors
var (
	// ErrDragInProgress indicates a pick-up while another drag is active
	ErrDragInProgress = errors.New("a drag gesture is already in progress")

	// ErrNotDragging indicates a drop or hover without an active drag
	ErrNotDragging = errors.New("no drag gesture in progress")

	// ErrUnknownTargetColumn indicates a drop onto a column the mapper
	// cannot resolve to a domain status
	ErrUnknownTargetColumn = errors.New("target column has no canonical status")
)
