package mailx

import (
	"context"
	"sync"
)

// MemorySender collects messages in memory. Intended for tests.
type MemorySender struct {
	mu       sync.Mutex
	messages []Message
}

// NewMemorySender creates a new MemorySender.
func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

// Send records the message.
func (s *MemorySender) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

// Messages returns a copy of all messages recorded so far.
func (s *MemorySender) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}
