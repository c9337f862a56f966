package events

import (
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"
)

// fakeDaemon is a minimal unix-socket server that accepts one client and
// exchanges Messages with it.
type fakeDaemon struct {
	listener net.Listener
	accepted chan net.Conn
}

func startFakeDaemon(t *testing.T) (*fakeDaemon, string) {
	t.Helper()
	socketPath := filepath.Join(t.TempDir(), "quadro.sock")

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("Failed to listen on socket: %v", err)
	}

	d := &fakeDaemon{listener: listener, accepted: make(chan net.Conn, 1)}
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		d.accepted <- conn
	}()

	t.Cleanup(func() { listener.Close() })
	return d, socketPath
}

func (d *fakeDaemon) conn(t *testing.T) net.Conn {
	t.Helper()
	select {
	case conn := <-d.accepted:
		return conn
	case <-time.After(2 * time.Second):
		t.Fatal("daemon never accepted a connection")
		return nil
	}
}

func readMessage(t *testing.T, decoder *json.Decoder) Message {
	t.Helper()
	var msg Message
	if err := decoder.Decode(&msg); err != nil {
		t.Fatalf("Failed to decode message: %v", err)
	}
	return msg
}

func TestClientConnectSendsSubscription(t *testing.T) {
	daemon, socketPath := startFakeDaemon(t)

	client, err := NewClient(socketPath, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	conn := daemon.conn(t)
	defer conn.Close()

	msg := readMessage(t, json.NewDecoder(conn))
	if msg.Type != "subscribe" || msg.Subscribe == nil {
		t.Fatalf("first message should be a subscription, got %+v", msg)
	}
	if msg.Subscribe.Kind != "" {
		t.Errorf("initial subscription should cover all boards, got %q", msg.Subscribe.Kind)
	}
}

func TestClientBatchesEventsWithinDebounceWindow(t *testing.T) {
	daemon, socketPath := startFakeDaemon(t)

	client, err := NewClient(socketPath, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	conn := daemon.conn(t)
	defer conn.Close()
	decoder := json.NewDecoder(conn)
	readMessage(t, decoder) // subscription

	// Burst of changes on one board collapses into a single batched event
	for range 5 {
		if err := client.SendEvent(Event{Type: EventDatabaseChanged, Kind: "activities"}); err != nil {
			t.Fatalf("SendEvent failed: %v", err)
		}
	}

	msg := readMessage(t, decoder)
	if msg.Type != "event" || msg.Event == nil {
		t.Fatalf("expected batched event, got %+v", msg)
	}
	if msg.Event.Kind != "activities" {
		t.Errorf("batched kind = %q, want activities", msg.Event.Kind)
	}
}

func TestClientBatchAcrossBoardsTargetsAll(t *testing.T) {
	daemon, socketPath := startFakeDaemon(t)

	client, err := NewClient(socketPath, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	conn := daemon.conn(t)
	defer conn.Close()
	decoder := json.NewDecoder(conn)
	readMessage(t, decoder) // subscription

	if err := client.SendEvent(Event{Type: EventDatabaseChanged, Kind: "activities"}); err != nil {
		t.Fatalf("SendEvent failed: %v", err)
	}
	if err := client.SendEvent(Event{Type: EventDatabaseChanged, Kind: "projects"}); err != nil {
		t.Fatalf("SendEvent failed: %v", err)
	}

	msg := readMessage(t, decoder)
	if msg.Event == nil || msg.Event.Kind != "" {
		t.Errorf("cross-board batch should target all boards, got %+v", msg)
	}
}

func TestClientListenDeliversAndDeduplicates(t *testing.T) {
	daemon, socketPath := startFakeDaemon(t)

	client, err := NewClient(socketPath, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	conn := daemon.conn(t)
	defer conn.Close()
	decoder := json.NewDecoder(conn)
	readMessage(t, decoder) // subscription

	eventChan, err := client.Listen(ctx)
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	encoder := json.NewEncoder(conn)
	send := func(seq int64) {
		t.Helper()
		err := encoder.Encode(Message{
			Type: "event",
			Event: &Event{
				Type:       EventDatabaseChanged,
				Kind:       "activities",
				Timestamp:  time.Now(),
				SequenceID: seq,
			},
		})
		if err != nil {
			t.Fatalf("Failed to write event: %v", err)
		}
	}

	send(1)
	send(1) // duplicate, must be suppressed
	send(2)

	var got []Event
	timeout := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case evt := <-eventChan:
			got = append(got, evt)
		case <-timeout:
			t.Fatalf("timed out, received %d events", len(got))
		}
	}

	if got[0].SequenceID != 1 || got[1].SequenceID != 2 {
		t.Errorf("unexpected sequence: %+v", got)
	}

	select {
	case evt := <-eventChan:
		t.Errorf("duplicate event delivered: %+v", evt)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestClientRespondsToPing(t *testing.T) {
	daemon, socketPath := startFakeDaemon(t)

	client, err := NewClient(socketPath, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	conn := daemon.conn(t)
	defer conn.Close()
	decoder := json.NewDecoder(conn)
	readMessage(t, decoder) // subscription

	if _, err := client.Listen(ctx); err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	encoder := json.NewEncoder(conn)
	if err := encoder.Encode(Message{Type: "ping"}); err != nil {
		t.Fatalf("Failed to send ping: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if time.Now().After(deadline) {
			t.Fatal("no pong received")
		}
		msg := readMessage(t, decoder)
		if msg.Type == "event" && msg.Event != nil && msg.Event.Type == EventPong {
			return
		}
	}
}

func TestClientCloseWithoutConnect(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "missing.sock"), 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("Close without Connect should succeed, got %v", err)
	}
	// Double close is a no-op
	if err := client.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}
