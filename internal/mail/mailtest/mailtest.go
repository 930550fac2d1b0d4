// Package mailtest provides a recording mail.Sender for tests.
package mailtest

import (
	"context"
	"sync"

	"github.com/likhastudio/site/internal/mail"
)

// Recorder records every Send call and can fail chosen calls.
type Recorder struct {
	mu        sync.Mutex
	attempts  []mail.Message
	delivered []mail.Message
	failures  map[int]error
}

// NewRecorder returns a recorder where every send succeeds.
func NewRecorder() *Recorder {
	return &Recorder{failures: map[int]error{}}
}

// FailOn makes the n-th Send call (1-based) return err.
func (r *Recorder) FailOn(n int, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[n] = err
	return r
}

// Send implements mail.Sender.
func (r *Recorder) Send(_ context.Context, msg mail.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, msg)
	if err := r.failures[len(r.attempts)]; err != nil {
		return err
	}
	r.delivered = append(r.delivered, msg)
	return nil
}

// Attempts returns every message passed to Send, in order.
func (r *Recorder) Attempts() []mail.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mail.Message(nil), r.attempts...)
}

// Delivered returns the messages whose Send call succeeded, in order.
func (r *Recorder) Delivered() []mail.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mail.Message(nil), r.delivered...)
}
