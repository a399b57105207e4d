package mocks

import (
	"sync"
	"time"
)

// MockRecorder implements metrics.Recorder for testing
type MockRecorder struct {
	mu          sync.Mutex
	outcomes    []string
	emailChecks []time.Duration
}

// RecordOutcome implements the Recorder interface
func (m *MockRecorder) RecordOutcome(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

// ObserveEmailCheck implements the Recorder interface
func (m *MockRecorder) ObserveEmailCheck(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emailChecks = append(m.emailChecks, d)
}

// Outcomes returns the recorded outcomes, in order
func (m *MockRecorder) Outcomes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.outcomes...)
}

// EmailChecks returns how many email checks were observed
func (m *MockRecorder) EmailChecks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.emailChecks)
}
