// Package daemon implements the quadro event daemon: a unix-socket hub that
// fans database change notifications out to every running quadro instance.
package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/quadro-app/quadro/internal/events"
)

// Health monitoring cadence. A client that misses three pings in a row
// is considered gone and swept on the next check.
const (
	pingInterval        = 30 * time.Second
	staleCheckInterval  = 60 * time.Second
	staleClientTimeout  = 90 * time.Second
	broadcastBufferSize = 100
	clientQueueSize     = 10
)

// client represents a connected client to the daemon
type client struct {
	conn         net.Conn
	send         chan events.Message
	subscription events.SubscribeMessage
	lastPong     time.Time
	mu           sync.Mutex // Protects subscription and lastPong
	closeOnce    sync.Once  // Ensures send channel is closed only once
}

// Server represents the quadro event daemon
type Server struct {
	socketPath       string
	listener         net.Listener
	clients          map[*client]bool
	mu               sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	broadcast        chan events.Event
	metrics          *Metrics
	sequenceCounter  atomic.Int64
	clientBufferSize int
	shutdownOnce     sync.Once
}

// NewServer creates a new daemon server listening on socketPath
func NewServer(socketPath string) (*Server, error) {
	// Ensure the directory exists
	dir := filepath.Dir(socketPath)
	if dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	// Remove stale socket file if it exists
	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		socketPath:       socketPath,
		listener:         listener,
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		broadcast:        make(chan events.Event, broadcastBufferSize),
		metrics:          NewMetrics(),
		clientBufferSize: clientQueueSize,
	}, nil
}

// Start runs the daemon server
// It starts three main goroutines: accept, broadcast, and health monitoring
func (s *Server) Start(ctx context.Context) error {
	slog.Info("daemon listening", "socket", s.socketPath)

	combinedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-s.ctx.Done()
		cancel()
	}()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(combinedCtx)
	}()

	go s.broadcastLoop(combinedCtx)
	go s.monitorHealth(combinedCtx)

	select {
	case <-combinedCtx.Done():
		slog.Info("daemon context cancelled, shutting down")
	case err := <-acceptErr:
		if err != nil {
			slog.Error("accept loop failed", "error", err)
		}
	}

	return s.Shutdown()
}

// acceptLoop accepts incoming client connections
func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// Set a deadline so we can check for context cancellation
		if err := s.listener.(*net.UnixListener).SetDeadline(time.Now().Add(1 * time.Second)); err != nil {
			slog.Warn("failed to set listener deadline", "error", err)
		}

		conn, err := s.listener.Accept()
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()

		s.updateClientCount()
		slog.Info("client connected", "clients", s.getClientCount())

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// broadcastLoop distributes events to subscribed clients
func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event := <-s.broadcast:
			// Add sequence number to event
			event.SequenceID = s.sequenceCounter.Add(1)

			s.metrics.IncBroadcastsTotal()

			s.mu.RLock()
			for c := range s.clients {
				// A client sees the event when it targets all boards, the
				// client subscribed to all boards, or the kinds match
				c.mu.Lock()
				isSubscribed := event.Kind == "" || c.subscription.Kind == "" || c.subscription.Kind == event.Kind
				c.mu.Unlock()

				if isSubscribed {
					msg := events.Message{
						Version: events.ProtocolVersion,
						Type:    "event",
						Event:   &event,
					}

					// Non-blocking send - if client is slow, skip
					if !s.sendToClient(c, msg) {
						slog.Warn("client send queue full, event dropped")
					}
				}
			}
			s.mu.RUnlock()
		}
	}
}

// handleClient reads messages from a connected client
func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		slog.Info("client disconnected", "clients", s.getClientCount())
	}()

	decoder := json.NewDecoder(c.conn)

	for {
		var msg events.Message

		if err := decoder.Decode(&msg); err != nil {
			return
		}

		// Check protocol version - log warning if mismatch
		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			slog.Warn("protocol version mismatch", "got", msg.Version, "want", events.ProtocolVersion)
		}

		switch msg.Type {
		case "event":
			if msg.Event != nil {
				s.metrics.IncEventsReceived()
				// Broadcast event to other clients
				select {
				case s.broadcast <- *msg.Event:
				default:
					slog.Warn("broadcast channel full, event dropped")
				}
			}

		case "subscribe":
			if msg.Subscribe != nil {
				c.mu.Lock()
				c.subscription = *msg.Subscribe
				c.mu.Unlock()
				slog.Info("client subscription changed", "kind", msg.Subscribe.Kind)
			}

		case "pong":
			c.mu.Lock()
			c.lastPong = time.Now()
			c.mu.Unlock()
		}
	}
}

// clientWriter sends messages to a client
func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)

	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth sends ping messages and removes stale clients
func (s *Server) monitorHealth(ctx context.Context) {
	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	staleTicker := time.NewTicker(staleCheckInterval)
	defer staleTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-pingTicker.C:
			s.pingClients()
		case <-staleTicker.C:
			s.sweepStaleClients()
		}
	}
}

func (s *Server) pingClients() {
	ping := events.Message{
		Version: events.ProtocolVersion,
		Type:    "ping",
		Event:   &events.Event{Type: events.EventPing},
	}

	for _, c := range s.snapshotClients() {
		if !s.sendToClient(c, ping) {
			slog.Warn("ping dropped, client queue full")
		}
	}
}

// sweepStaleClients drops clients that stopped answering pings
func (s *Server) sweepStaleClients() {
	now := time.Now()
	for _, c := range s.snapshotClients() {
		c.mu.Lock()
		sincePong := now.Sub(c.lastPong)
		c.mu.Unlock()

		if sincePong > staleClientTimeout {
			slog.Info("removing stale client", "since_pong", sincePong)
			s.removeClient(c)
		}
	}
}

// snapshotClients copies the client set so callers can iterate without
// holding the server lock
func (s *Server) snapshotClients() []*client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	return clients
}

// Broadcast sends an event to the broadcast channel (non-blocking)
func (s *Server) Broadcast(event events.Event) error {
	select {
	case s.broadcast <- event:
		return nil
	default:
		return fmt.Errorf("broadcast channel full")
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		slog.Info("daemon shutting down")

		s.cancel()

		if s.listener != nil {
			if closeErr := s.listener.Close(); closeErr != nil {
				slog.Warn("failed to close listener", "error", closeErr)
			}
		}

		s.mu.Lock()
		for c := range s.clients {
			if closeErr := c.conn.Close(); closeErr != nil {
				slog.Warn("failed to close client connection", "error", closeErr)
			}
			c.closeOnce.Do(func() {
				close(c.send)
			})
		}
		s.clients = make(map[*client]bool)
		s.mu.Unlock()

		if removeErr := os.Remove(s.socketPath); removeErr != nil && !os.IsNotExist(removeErr) {
			slog.Warn("failed to remove socket file", "error", removeErr)
		}

		close(s.broadcast)
	})

	return err
}

// Helper methods

func (s *Server) getClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	count := s.getClientCount()
	s.metrics.SetConnectedClients(int32(count))
}

// removeClient safely removes a client from the server
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()

	if err := c.conn.Close(); err != nil {
		slog.Warn("failed to close client connection", "error", err)
	}
	c.closeOnce.Do(func() {
		close(c.send)
	})

	s.updateClientCount()
}

// sendToClient attempts to send a message to a client (non-blocking)
// Returns true if successful, false if the queue is full
func (s *Server) sendToClient(c *client, msg events.Message) bool {
	select {
	case c.send <- msg:
		s.metrics.IncEventsSent()
		return true
	default:
		return false
	}
}

// Metrics exposes the daemon's metrics for status reporting
func (s *Server) Metrics() *Metrics {
	return s.metrics
}
