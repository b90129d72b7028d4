// Package session implements the conversation session controller: message
// history, prompt composition with optional document context, the simulated
// token-by-token reveal, and the request flight state.
package session

import (
	"sync"

	"github.com/diogo/docchat/internal/models"
)

// Log is an ordered, append-friendly collection of conversation turns.
// Messages are keyed by ID; Replace keeps exactly one message per ID.
type Log struct {
	mu       sync.Mutex
	messages []models.Message
}

// NewLog creates an empty Log
func NewLog() *Log {
	return &Log{}
}

// Append adds a message at the end, preserving arrival order
func (l *Log) Append(msg models.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

// Replace removes any existing message with the given ID and appends msg at
// the end. With a single reveal in flight this in-place update is the only
// writer for that ID, so the visual "move to the end" is immaterial.
func (l *Log) Replace(id string, msg models.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.messages[:0]
	for _, m := range l.messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	l.messages = append(kept, msg)
}

// Snapshot returns a copy of the current message sequence for rendering
func (l *Log) Snapshot() []models.Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of messages in the log
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}
