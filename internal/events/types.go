package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventDatabaseChanged EventType = "db_changed"
	EventColumnsChanged  EventType = "columns_changed"
	EventPing            EventType = "ping"
	EventPong            EventType = "pong"
)

// Event represents a change notification
type Event struct {
	Type       EventType
	Kind       string    // For filtering - which board was modified ("" = all boards)
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// SubscribeMessage is sent by clients to subscribe to specific board updates
type SubscribeMessage struct {
	Kind string // "" = all boards, otherwise a board kind
}

// ProtocolVersion is the wire protocol version spoken by client and daemon.
// Messages with a different non-zero version are logged but still processed.
const ProtocolVersion = 1

// Message wraps events and control messages for wire protocol
type Message struct {
	Version   int               `json:",omitempty"`
	Type      string            // "event", "subscribe", "ping", "pong"
	Event     *Event            `json:",omitempty"`
	Subscribe *SubscribeMessage `json:",omitempty"`
}
