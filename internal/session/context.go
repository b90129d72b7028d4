package session

import "sync"

// ContextStore holds at most one extracted document text, read at prompt
// composition time. Set replaces the previous value entirely; the empty
// string means "no augmentation".
type ContextStore struct {
	mu   sync.RWMutex
	text string
}

// NewContextStore creates an empty ContextStore
func NewContextStore() *ContextStore {
	return &ContextStore{}
}

// Set replaces the stored value unconditionally
func (s *ContextStore) Set(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

// Get returns the current value
func (s *ContextStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}
