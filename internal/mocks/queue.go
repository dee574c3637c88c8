package mocks

import "sync"

// MockQueue is a mock implementation of MessageQueue interface. It
// records published messages for assertions.
type MockQueue struct {
	mu          sync.Mutex
	published   map[string][][]byte
	PublishFunc func(subject string, data []byte) error
	CloseFunc   func() error
}

func NewMockQueue() *MockQueue {
	return &MockQueue{
		published: make(map[string][][]byte),
	}
}

func (m *MockQueue) Publish(subject string, data []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(subject, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published[subject] = append(m.published[subject], data)
	return nil
}

func (m *MockQueue) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Published returns the messages published on a subject.
func (m *MockQueue) Published(subject string) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.published[subject]))
	copy(out, m.published[subject])
	return out
}
