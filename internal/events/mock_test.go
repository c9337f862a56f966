package events

import (
	"context"
	"sync"
)

// MockPublisher is a test double for EventPublisher that records sent events
// and can be configured to fail a number of times before succeeding.
type MockPublisher struct {
	mu          sync.Mutex
	sent        []Event
	failures    int // remaining SendEvent calls that return failErr
	failErr     error
	subscribed  []string
	connectErr  error
	closeCalled bool
}

func (m *MockPublisher) Connect(ctx context.Context) error {
	return m.connectErr
}

func (m *MockPublisher) SendEvent(event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failures > 0 {
		m.failures--
		return m.failErr
	}
	m.sent = append(m.sent, event)
	return nil
}

func (m *MockPublisher) Listen(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	close(ch)
	return ch, nil
}

func (m *MockPublisher) Subscribe(kind string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribed = append(m.subscribed, kind)
	return nil
}

func (m *MockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalled = true
	return nil
}

func (m *MockPublisher) sentEvents() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.sent))
	copy(out, m.sent)
	return out
}

var _ EventPublisher = (*MockPublisher)(nil)
