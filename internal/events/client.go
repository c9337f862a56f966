package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"
)

// Client represents a connection to the quadro daemon for receiving live updates.
// It handles event sending, receiving, batching, reconnection, and subscriptions.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	// Batching configuration
	eventQueue chan Event
	debounce   time.Duration
	closed     bool // Prevent double-close panics

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	// Subscription state
	currentKind string

	// Event tracking
	lastSequence int64

	// Context for graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc

	// Batching goroutine
	batcherStarted bool
	batcherDone    chan struct{}
}

// NewClient creates a new event client but does not connect.
// The socket path should be the full path to the Unix domain socket.
// The debounce duration controls event batching; non-positive values fall
// back to 100ms.
func NewClient(socketPath string, debounce time.Duration) (*Client, error) {
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:   socketPath,
		eventQueue:   make(chan Event, 100),
		debounce:     debounce,
		maxRetries:   5,
		baseDelay:    1 * time.Second,
		currentKind:  "",
		lastSequence: 0,
		ctx:          ctx,
		cancel:       cancel,
		batcherDone:  make(chan struct{}),
	}, nil
}

// Connect establishes a connection to the daemon socket.
// It sends an initial subscription message for all boards.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	// Send initial subscription for all boards
	msg := Message{
		Version: ProtocolVersion,
		Type:    "subscribe",
		Subscribe: &SubscribeMessage{
			Kind: c.currentKind,
		},
	}
	if err := c.encoder.Encode(msg); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Warn("failed to close daemon connection", "error", closeErr)
		}
		return fmt.Errorf("failed to send subscription: %w", err)
	}

	// Start the batching goroutine (once; reconnects reuse it)
	if !c.batcherStarted {
		c.batcherStarted = true
		go c.startBatcher()
	}

	return nil
}

// SendEvent queues an event to be sent to the daemon.
// Events are batched and sent in bursts within the debounce window.
// Returns error if the queue is full (non-blocking send).
func (c *Client) SendEvent(event Event) error {
	select {
	case c.eventQueue <- event:
		return nil
	default:
		return fmt.Errorf("event queue full")
	}
}

// startBatcher runs in a goroutine and batches events from the queue.
// It sends a single event every debounce duration if any events are pending.
// If events for multiple boards are batched together, the batch targets all
// boards (empty kind).
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var pending bool
	var eventType EventType
	var kind string
	var hasMultipleKinds bool

	flushPending := func() {
		if pending {
			batchKind := kind
			if hasMultipleKinds {
				batchKind = ""
			}

			if err := c.sendToSocket(Event{
				Type:      eventType,
				Kind:      batchKind,
				Timestamp: time.Now(),
			}); err != nil {
				if !isConnectionError(err) {
					slog.Warn("failed to send batched event", "error", err)
				}
			}
			pending = false
		}
	}

	merge := func(evt Event) {
		if !pending {
			pending = true
			eventType = evt.Type
			kind = evt.Kind
			hasMultipleKinds = false
			return
		}
		if kind != evt.Kind && evt.Kind != "" {
			hasMultipleKinds = true
		}
		if eventType != evt.Type {
			// Mixed batch collapses to a generic database change
			eventType = EventDatabaseChanged
		}
	}

	for {
		select {
		case <-c.ctx.Done():
			// Flush any pending events before exiting
			flushPending()
			return

		case event, ok := <-c.eventQueue:
			if !ok {
				// Channel closed - flush and exit
				flushPending()
				return
			}

			merge(event)

			// Drain any other events queued during this batch window
		drainLoop:
			for {
				select {
				case evt, ok := <-c.eventQueue:
					if !ok {
						break drainLoop
					}
					merge(evt)
				default:
					break drainLoop
				}
			}

		case <-ticker.C:
			flushPending()
		}
	}
}

// sendToSocket sends an event to the daemon socket.
func (c *Client) sendToSocket(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("not connected to daemon")
	}

	// Set a short write deadline to detect dead connections
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	msg := Message{
		Version: ProtocolVersion,
		Type:    "event",
		Event:   &event,
	}
	return c.encoder.Encode(msg)
}

// Listen starts listening for events from the daemon.
// It returns a channel that receives events and handles reconnection automatically.
// The channel is closed when context is done or reconnection fails.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	eventChan := make(chan Event, 10)
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

// listenLoop reads events from the daemon and handles reconnection.
func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			err := c.readEvents(ctx, eventChan)
			if err != nil {
				slog.Warn("daemon connection lost, reconnecting", "error", err)

				if c.reconnect(ctx) {
					slog.Info("reconnected to daemon")
					continue
				}

				slog.Error("giving up on daemon reconnection", "attempts", c.maxRetries)
				return
			}
		}
	}
}

// readEvents reads messages from the socket and sends them to the event channel.
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return fmt.Errorf("connection closed")
		}
		// Set read deadline to detect hung connections (60 seconds)
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case "event":
			if msg.Event != nil {
				// Check for event ordering (basic duplicate detection)
				if msg.Event.SequenceID > c.lastSequence {
					c.lastSequence = msg.Event.SequenceID
					select {
					case eventChan <- *msg.Event:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}

		case "ping":
			// Respond to daemon ping with pong
			if err := c.sendToSocket(Event{Type: EventPong}); err != nil {
				// Broken pipe/connection closed is expected during disconnection
				if !isConnectionError(err) {
					slog.Warn("failed to send pong", "error", err)
				}
			}
		}
	}
}

// isConnectionError checks if an error is a network connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "use of closed network connection")
}

// reconnect attempts to reconnect to the daemon with exponential backoff.
// It tries up to maxRetries times, doubling the delay each time.
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
			c.mu.Lock()
			if c.conn != nil {
				if err := c.conn.Close(); err != nil {
					slog.Warn("failed to close connection during reconnect", "error", err)
				}
			}
			c.mu.Unlock()

			if err := c.Connect(ctx); err == nil {
				slog.Info("reconnected to daemon", "attempt", i+1, "max", c.maxRetries)
				return true
			}

			slog.Warn("reconnection attempt failed", "attempt", i+1, "max", c.maxRetries, "retry_in", delay)
			delay *= 2 // Exponential backoff: 1s, 2s, 4s, 8s, 16s
		}
	}

	return false
}

// Subscribe changes the subscription to a specific board kind.
// An empty kind means subscribe to all boards.
func (c *Client) Subscribe(kind string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentKind = kind

	msg := Message{
		Version: ProtocolVersion,
		Type:    "subscribe",
		Subscribe: &SubscribeMessage{
			Kind: kind,
		},
	}

	if c.conn == nil {
		return fmt.Errorf("not connected to daemon")
	}

	return c.encoder.Encode(msg)
}

// Close closes the connection to the daemon and stops all goroutines.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true

	// Close the event queue to signal no more events coming
	// This allows batcher to flush pending events before exiting
	if c.eventQueue != nil {
		close(c.eventQueue)
	}
	batcherStarted := c.batcherStarted
	c.mu.Unlock()

	// Cancel context to stop other goroutines
	c.cancel()

	// Wait for batcher to finish (it will flush pending events)
	if batcherStarted {
		<-c.batcherDone
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.conn.Close()
	}

	return nil
}
