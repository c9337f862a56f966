package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Canonical activity statuses. Historical spellings ("todo", "open",
// "doing", "done") are collapsed into these by the status mapper.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Canonical project statuses
const (
	StatusPlanning  = "planning"
	StatusActive    = "active"
	StatusOnHold    = "on_hold"
	StatusCancelled = "cancelled"
)

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// Priority levels carried by items. Display-only; never affects placement.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultPriority is assigned when an item is created without one
const DefaultPriority = PriorityMedium

// ============================================================================
// COLUMN DEFAULTS
// ============================================================================

// DefaultColumnName is the label given to a freshly added column,
// matching the product's pt-BR labels.
const DefaultColumnName = "NOVA ETAPA"

// DefaultColumnColor is the palette color for a freshly added column
const DefaultColumnColor = "blue"
