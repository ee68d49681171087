// Package mockboard provides a mock clipboard implementation for testing.
package mockboard

import "sync"

// MockClipboard implements clipboard.Clipboard in memory. It is safe for
// concurrent use so tests can mutate it while a sampler polls it.
type MockClipboard struct {
	mu       sync.Mutex
	text     string
	readErr  error
	writeErr error
}

// New creates a new MockClipboard instance.
func New() *MockClipboard {
	return &MockClipboard{}
}

// ReadText returns the injected error if set, otherwise the current text.
func (m *MockClipboard) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return "", m.readErr
	}
	return m.text, nil
}

// WriteText returns the injected error if set, otherwise stores the text.
func (m *MockClipboard) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}
	m.text = text
	return nil
}

// SetText sets the mock clipboard text directly (for testing).
func (m *MockClipboard) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// Text returns the current clipboard text (for testing).
func (m *MockClipboard) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// SetReadError injects an error returned by subsequent ReadText calls.
// Pass nil to clear it.
func (m *MockClipboard) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// SetWriteError injects an error returned by subsequent WriteText calls.
// Pass nil to clear it.
func (m *MockClipboard) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}
