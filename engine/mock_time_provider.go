package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for tests
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mock forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	return m.currentTime
}

// Drive advances the mock in steps of frame and calls loop.Advance after each
// step until total has elapsed, simulating a display refreshing at 1/frame Hz
func (m *MockTimeProvider) Drive(loop *Loop, total, frame time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		loop.Advance(m.Advance(frame))
	}
}
