package address

import (
	"context"
	"sync"
)

// MockValidator is a test implementation of Validator.
// It is safe for concurrent use; ValidateFunc must be too.
type MockValidator struct {
	ValidateFunc func(ctx context.Context, raw string, isPrivate bool) (*ValidationResult, error)

	mu    sync.Mutex
	calls []string
}

// NewMockValidator creates a new mock address validator for testing.
// Without a ValidateFunc it behaves like a BasicValidator with zero Options.
func NewMockValidator() *MockValidator {
	return &MockValidator{}
}

// Validate delegates to the configured function or returns a default result.
func (m *MockValidator) Validate(ctx context.Context, raw string, isPrivate bool) (*ValidationResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, raw)
	m.mu.Unlock()

	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, raw, isPrivate)
	}
	return NewBasicValidator(Options{}, nil, nil).Validate(ctx, raw, isPrivate)
}

// Calls returns the raw input of every Validate call so far, in call order.
func (m *MockValidator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
