// Package mail defines the outbound email contract the site depends on.
//
// Delivery providers implement Sender; the contact pipeline only sees this
// package, so the provider can be swapped or faked without touching it.
package mail

import (
	"context"
	"errors"
	"strings"
)

// Message is one outbound HTML email.
type Message struct {
	To      string
	From    string
	ReplyTo string
	Subject string
	HTML    string
}

// Validate reports whether the message has the fields every provider needs.
func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.To) == "":
		return errors.New("recipient is required")
	case strings.TrimSpace(m.From) == "":
		return errors.New("sender is required")
	case strings.TrimSpace(m.Subject) == "":
		return errors.New("subject is required")
	case strings.TrimSpace(m.HTML) == "":
		return errors.New("html body is required")
	}
	return nil
}

// Sender delivers one message. A nil error means the provider accepted it.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
