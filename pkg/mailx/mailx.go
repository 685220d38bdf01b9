// Package mailx provides a small outbound e-mail abstraction with
// interchangeable delivery backends.
package mailx

import "context"

// Message is a plain-text e-mail ready for delivery.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender delivers a message to its recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
