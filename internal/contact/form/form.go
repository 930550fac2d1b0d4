// Package form drives the contact form from the visitor's side: local
// presence checks, one request at a time, and the auto-close after success.
package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/likhastudio/site/internal/contact"
	platformi18n "github.com/likhastudio/site/internal/platform/i18n"
	"golang.org/x/text/language"
)

// AutoCloseDelay is how long the success message stays before the form closes.
const AutoCloseDelay = 2 * time.Second

var (
	// ErrSubmissionInFlight rejects a submit while another is pending.
	ErrSubmissionInFlight = errors.New("contact form: submission in flight")
	// ErrClosing rejects a submit while the success message is showing.
	ErrClosing = errors.New("contact form: closing")
)

// Field names a form input.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldMessage   Field = "message"
)

// Submitter delivers a submission and returns the server confirmation.
type Submitter interface {
	Submit(ctx context.Context, s contact.Submission) (string, error)
}

// Stopper cancels a scheduled callback.
type Stopper interface {
	Stop() bool
}

// Option customizes a Form.
type Option func(*Form)

// WithLanguage selects the copy used for locally produced messages.
func WithLanguage(tag language.Tag) Option {
	return func(f *Form) {
		f.lang = tag
	}
}

// WithOnClose registers the callback run when the form auto-closes.
func WithOnClose(fn func()) Option {
	return func(f *Form) {
		f.onClose = fn
	}
}

// WithAfterFunc replaces time.AfterFunc for scheduling the auto-close.
func WithAfterFunc(fn func(time.Duration, func()) Stopper) Option {
	return func(f *Form) {
		if fn != nil {
			f.afterFunc = fn
		}
	}
}

// Form is safe for concurrent use.
type Form struct {
	mu        sync.Mutex
	fields    contact.Submission
	state     State
	closer    Stopper
	submitter Submitter
	lang      language.Tag
	onClose   func()
	afterFunc func(time.Duration, func()) Stopper
}

// New returns an idle, empty form that submits through submitter.
func New(submitter Submitter, opts ...Option) *Form {
	f := &Form{
		state:     Idle{},
		submitter: submitter,
		lang:      platformi18n.DefaultTag(),
		afterFunc: func(d time.Duration, fn func()) Stopper {
			return time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// State returns the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fields returns the current raw input.
func (f *Form) Fields() contact.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Set updates one field. Nothing is validated until Submit.
func (f *Form) Set(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch field {
	case FieldFirstName:
		f.fields.FirstName = value
	case FieldLastName:
		f.fields.LastName = value
	case FieldEmail:
		f.fields.Email = value
	case FieldMessage:
		f.fields.Message = value
	}
}

// Submit checks presence, sends the trimmed values and moves the form to
// Success or Failed. It returns the state reached.
//
// Email format is left to the server.
func (f *Form) Submit(ctx context.Context) (State, error) {
	f.mu.Lock()
	switch f.state.(type) {
	case Submitting:
		f.mu.Unlock()
		return Submitting{}, ErrSubmissionInFlight
	case Success:
		state := f.state
		f.mu.Unlock()
		return state, ErrClosing
	}
	if missing := f.fields.MissingFields(); len(missing) > 0 {
		err := &contact.ValidationError{Reason: contact.ReasonMissingFields, Fields: missing}
		f.state = Failed{Message: contact.Text(f.lang, contact.KeyMissingFields)}
		state := f.state
		f.mu.Unlock()
		return state, err
	}
	f.state = Submitting{}
	payload := f.fields.Trimmed()
	f.mu.Unlock()

	message, err := f.submitter.Submit(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Failed{Message: f.failureMessage(err)}
		return f.state, err
	}
	f.fields = contact.Submission{}
	f.state = Success{Message: message}
	f.closer = f.afterFunc(AutoCloseDelay, f.autoClose)
	return f.state, nil
}

// Close returns the form to Idle, cancelling a pending auto-close. The close
// callback is not run.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.state.(Submitting); ok {
		return
	}
	if f.closer != nil {
		f.closer.Stop()
		f.closer = nil
	}
	f.state = Idle{}
}

func (f *Form) autoClose() {
	f.mu.Lock()
	if _, ok := f.state.(Success); !ok {
		f.mu.Unlock()
		return
	}
	f.state = Idle{}
	f.closer = nil
	onClose := f.onClose
	f.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

func (f *Form) failureMessage(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		if serverErr.Message != "" {
			return serverErr.Message
		}
		return contact.Text(f.lang, contact.KeyDeliveryFailed)
	}
	return contact.Text(f.lang, contact.KeyNetworkFailure)
}
