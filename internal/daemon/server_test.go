package daemon

import (
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/quadro-app/quadro/internal/events"
)

func startTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	socketPath := filepath.Join(t.TempDir(), "quadro.sock")

	server, err := NewServer(socketPath)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := server.Start(ctx); err != nil {
			t.Logf("server stopped: %v", err)
		}
	}()
	t.Cleanup(func() {
		cancel()
		server.Shutdown()
	})

	return server, socketPath
}

// dialAndSubscribe connects a raw json client and subscribes to one board kind
func dialAndSubscribe(t *testing.T, socketPath, kind string) (net.Conn, *json.Encoder, *json.Decoder) {
	t.Helper()

	var conn net.Conn
	var err error
	deadline := time.Now().Add(2 * time.Second)
	for {
		conn, err = net.Dial("unix", socketPath)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Failed to dial daemon: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Cleanup(func() { conn.Close() })

	encoder := json.NewEncoder(conn)
	err = encoder.Encode(events.Message{
		Version:   events.ProtocolVersion,
		Type:      "subscribe",
		Subscribe: &events.SubscribeMessage{Kind: kind},
	})
	if err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}

	return conn, encoder, json.NewDecoder(conn)
}

func waitForEvent(t *testing.T, conn net.Conn, decoder *json.Decoder) *events.Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			t.Fatalf("Failed to read event: %v", err)
		}
		if msg.Type == "event" && msg.Event != nil && msg.Event.Type != events.EventPing {
			return msg.Event
		}
	}
}

func TestServerFansEventOutToOtherClients(t *testing.T) {
	_, socketPath := startTestServer(t)

	_, senderEnc, _ := dialAndSubscribe(t, socketPath, "")
	receiverConn, _, receiverDec := dialAndSubscribe(t, socketPath, "")

	// Give the server a moment to register both subscriptions
	time.Sleep(50 * time.Millisecond)

	err := senderEnc.Encode(events.Message{
		Version: events.ProtocolVersion,
		Type:    "event",
		Event: &events.Event{
			Type:      events.EventDatabaseChanged,
			Kind:      "activities",
			Timestamp: time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Failed to send event: %v", err)
	}

	evt := waitForEvent(t, receiverConn, receiverDec)
	if evt.Type != events.EventDatabaseChanged || evt.Kind != "activities" {
		t.Errorf("unexpected event: %+v", evt)
	}
	if evt.SequenceID == 0 {
		t.Error("server should stamp a sequence id")
	}
}

func TestServerFiltersBySubscribedKind(t *testing.T) {
	_, socketPath := startTestServer(t)

	_, senderEnc, _ := dialAndSubscribe(t, socketPath, "")
	projConn, _, projDec := dialAndSubscribe(t, socketPath, "projects")

	time.Sleep(50 * time.Millisecond)

	// An activities-only event must not reach a projects subscriber
	send := func(kind string) {
		t.Helper()
		err := senderEnc.Encode(events.Message{
			Version: events.ProtocolVersion,
			Type:    "event",
			Event: &events.Event{
				Type:      events.EventDatabaseChanged,
				Kind:      kind,
				Timestamp: time.Now(),
			},
		})
		if err != nil {
			t.Fatalf("Failed to send event: %v", err)
		}
	}

	send("activities")
	send("projects")

	evt := waitForEvent(t, projConn, projDec)
	if evt.Kind != "projects" {
		t.Errorf("projects subscriber received %q event", evt.Kind)
	}
}

func TestServerSequenceNumbersIncrease(t *testing.T) {
	_, socketPath := startTestServer(t)

	_, senderEnc, _ := dialAndSubscribe(t, socketPath, "")
	recvConn, _, recvDec := dialAndSubscribe(t, socketPath, "")

	time.Sleep(50 * time.Millisecond)

	for range 3 {
		err := senderEnc.Encode(events.Message{
			Version: events.ProtocolVersion,
			Type:    "event",
			Event: &events.Event{
				Type:      events.EventDatabaseChanged,
				Timestamp: time.Now(),
			},
		})
		if err != nil {
			t.Fatalf("Failed to send event: %v", err)
		}
	}

	var last int64
	for range 3 {
		evt := waitForEvent(t, recvConn, recvDec)
		if evt.SequenceID <= last {
			t.Errorf("sequence not increasing: %d after %d", evt.SequenceID, last)
		}
		last = evt.SequenceID
	}
}

func TestSweepStaleClients(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "quadro.sock")
	server, err := NewServer(socketPath)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	t.Cleanup(func() { server.Shutdown() })

	addClient := func(lastPong time.Time) *client {
		t.Helper()
		conn, peer := net.Pipe()
		t.Cleanup(func() { peer.Close() })
		c := &client{
			conn:     conn,
			send:     make(chan events.Message, server.clientBufferSize),
			lastPong: lastPong,
		}
		server.mu.Lock()
		server.clients[c] = true
		server.mu.Unlock()
		return c
	}

	stale := addClient(time.Now().Add(-2 * staleClientTimeout))
	fresh := addClient(time.Now())

	server.sweepStaleClients()

	server.mu.RLock()
	defer server.mu.RUnlock()
	if server.clients[stale] {
		t.Error("stale client should have been removed")
	}
	if !server.clients[fresh] {
		t.Error("responsive client should have been kept")
	}
}

func TestServerMetricsTrackActivity(t *testing.T) {
	server, socketPath := startTestServer(t)

	_, senderEnc, _ := dialAndSubscribe(t, socketPath, "")
	recvConn, _, recvDec := dialAndSubscribe(t, socketPath, "")

	time.Sleep(50 * time.Millisecond)

	err := senderEnc.Encode(events.Message{
		Version: events.ProtocolVersion,
		Type:    "event",
		Event:   &events.Event{Type: events.EventDatabaseChanged, Timestamp: time.Now()},
	})
	if err != nil {
		t.Fatalf("Failed to send event: %v", err)
	}
	waitForEvent(t, recvConn, recvDec)

	snapshot := server.Metrics().GetSnapshot()
	if snapshot.EventsReceived == 0 {
		t.Error("EventsReceived should be tracked")
	}
	if snapshot.BroadcastsTotal == 0 {
		t.Error("BroadcastsTotal should be tracked")
	}
	if snapshot.ConnectedClients != 2 {
		t.Errorf("ConnectedClients = %d, want 2", snapshot.ConnectedClients)
	}
}
