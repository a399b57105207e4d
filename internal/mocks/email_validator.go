package mocks

import "sync"

// MockEmailValidator implements api.EmailValidator for testing
type MockEmailValidator struct {
	// IsValidFn overrides the default behavior when set
	IsValidFn func(email string) (bool, error)

	// Returned by the default implementation
	Valid bool
	Err   error

	mu    sync.Mutex
	calls []string
}

// NewMockEmailValidator creates a mock that accepts every address
func NewMockEmailValidator() *MockEmailValidator {
	return &MockEmailValidator{Valid: true}
}

// IsValid implements the EmailValidator interface
func (m *MockEmailValidator) IsValid(email string) (bool, error) {
	m.mu.Lock()
	m.calls = append(m.calls, email)
	m.mu.Unlock()

	if m.IsValidFn != nil {
		return m.IsValidFn(email)
	}
	return m.Valid, m.Err
}

// Calls returns the emails IsValid was called with, in order
func (m *MockEmailValidator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
