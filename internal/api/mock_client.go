package api

import "sync"

// MockGenerator is a mock implementation of Generator for testing
type MockGenerator struct {
	mu sync.Mutex

	// Mock return values
	GenerateContentVal string
	GenerateContentErr error

	// Optional per-call override; takes precedence when set
	GenerateFunc func(prompt string) (string, error)

	// Call recorders
	GenerateContentCalled int
	Prompts               []string
}

// Ensure MockGenerator implements Generator
var _ Generator = (*MockGenerator)(nil)

func (m *MockGenerator) GenerateContent(prompt string) (string, error) {
	m.mu.Lock()
	m.GenerateContentCalled++
	m.Prompts = append(m.Prompts, prompt)
	fn := m.GenerateFunc
	val, err := m.GenerateContentVal, m.GenerateContentErr
	m.mu.Unlock()

	if fn != nil {
		return fn(prompt)
	}
	return val, err
}

// LastPrompt returns the most recent prompt passed to GenerateContent
func (m *MockGenerator) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Prompts) == 0 {
		return ""
	}
	return m.Prompts[len(m.Prompts)-1]
}

// CallCount returns how many times GenerateContent was invoked
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.GenerateContentCalled
}
