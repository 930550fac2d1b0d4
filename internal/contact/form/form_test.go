package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/likhastudio/site/internal/contact"
	"golang.org/x/text/language"
)

type fakeSubmitter struct {
	mu      sync.Mutex
	calls   []contact.Submission
	message string
	err     error
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeSubmitter) Submit(_ context.Context, s contact.Submission) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, s)
	block, entered := f.block, f.entered
	f.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		<-block
	}
	return f.message, f.err
}

func (f *fakeSubmitter) Calls() []contact.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]contact.Submission(nil), f.calls...)
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Stopper {
	timer := &fakeTimer{delay: d, fn: fn}
	s.timers = append(s.timers, timer)
	return timer
}

func fill(f *Form) {
	f.Set(FieldFirstName, " Mario ")
	f.Set(FieldLastName, "Rossi")
	f.Set(FieldEmail, " mario@example.com")
	f.Set(FieldMessage, "Ciao\n")
}

func TestNewFormIsIdle(t *testing.T) {
	t.Parallel()

	f := New(&fakeSubmitter{})
	if _, ok := f.State().(Idle); !ok {
		t.Fatalf("State() = %T, want Idle", f.State())
	}
}

func TestSubmitMissingFieldsSendsNothing(t *testing.T) {
	t.Parallel()

	fields := []Field{FieldFirstName, FieldLastName, FieldEmail, FieldMessage}
	for _, missing := range fields {
		sub := &fakeSubmitter{}
		f := New(sub)
		fill(f)
		f.Set(missing, "   ")

		state, err := f.Submit(context.Background())
		if !contact.IsValidationReason(err, contact.ReasonMissingFields) {
			t.Fatalf("%s: Submit() = %v, want missing fields", missing, err)
		}
		failed, ok := state.(Failed)
		if !ok || failed.Message != "Tutti i campi sono obbligatori" {
			t.Fatalf("%s: state = %#v", missing, state)
		}
		if len(sub.Calls()) != 0 {
			t.Fatalf("%s: submitter called", missing)
		}
	}
}

func TestSubmitDoesNotCheckEmailFormat(t *testing.T) {
	t.Parallel()

	sub := &fakeSubmitter{err: &ServerError{StatusCode: 400, Message: "Email non valida"}}
	f := New(sub)
	fill(f)
	f.Set(FieldEmail, "mario@example")

	state, _ := f.Submit(context.Background())
	if len(sub.Calls()) != 1 {
		t.Fatalf("calls = %d, want 1", len(sub.Calls()))
	}
	if failed, ok := state.(Failed); !ok || failed.Message != "Email non valida" {
		t.Fatalf("state = %#v", state)
	}
}

func TestSubmitSuccessClearsAndAutoCloses(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{}
	closed := 0
	sub := &fakeSubmitter{message: "Email inviata con successo!"}
	f := New(sub, WithAfterFunc(sched.AfterFunc), WithOnClose(func() { closed++ }))
	fill(f)

	state, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() = %v", err)
	}
	if success, ok := state.(Success); !ok || success.Message != "Email inviata con successo!" {
		t.Fatalf("state = %#v", state)
	}
	want := contact.Submission{FirstName: "Mario", LastName: "Rossi", Email: "mario@example.com", Message: "Ciao"}
	if calls := sub.Calls(); len(calls) != 1 || calls[0] != want {
		t.Fatalf("calls = %+v, want trimmed %+v", calls, want)
	}
	if f.Fields() != (contact.Submission{}) {
		t.Fatalf("fields not cleared: %+v", f.Fields())
	}
	if len(sched.timers) != 1 || sched.timers[0].delay != AutoCloseDelay {
		t.Fatalf("timers = %+v", sched.timers)
	}
	if closed != 0 {
		t.Fatal("closed before the delay elapsed")
	}

	sched.timers[0].fn()
	if _, ok := f.State().(Idle); !ok {
		t.Fatalf("State() = %T after auto-close, want Idle", f.State())
	}
	if closed != 1 {
		t.Fatalf("closed = %d, want 1", closed)
	}
}

func TestSubmitDuringSuccessIsRejected(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{}
	sub := &fakeSubmitter{message: "ok"}
	f := New(sub, WithAfterFunc(sched.AfterFunc))
	fill(f)
	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() = %v", err)
	}
	fill(f)
	if _, err := f.Submit(context.Background()); !errors.Is(err, ErrClosing) {
		t.Fatalf("Submit() = %v, want ErrClosing", err)
	}
	if len(sub.Calls()) != 1 {
		t.Fatalf("calls = %d, want 1", len(sub.Calls()))
	}
}

func TestCloseCancelsAutoClose(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{}
	closed := false
	f := New(&fakeSubmitter{message: "ok"}, WithAfterFunc(sched.AfterFunc), WithOnClose(func() { closed = true }))
	fill(f)
	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() = %v", err)
	}
	f.Close()
	if !sched.timers[0].stopped {
		t.Fatal("auto-close timer not stopped")
	}
	// A late timer firing after Close must not call back.
	sched.timers[0].fn()
	if closed {
		t.Fatal("onClose ran after manual close")
	}
}

func TestSubmitServerErrorKeepsFields(t *testing.T) {
	t.Parallel()

	sub := &fakeSubmitter{err: &ServerError{StatusCode: 500, Message: "Errore nell'invio dell'email. Riprova più tardi."}}
	f := New(sub)
	fill(f)

	state, err := f.Submit(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if failed, ok := state.(Failed); !ok || failed.Message != "Errore nell'invio dell'email. Riprova più tardi." {
		t.Fatalf("state = %#v", state)
	}
	if f.Fields().FirstName != " Mario " {
		t.Fatalf("fields changed: %+v", f.Fields())
	}
}

func TestSubmitServerErrorWithoutMessage(t *testing.T) {
	t.Parallel()

	f := New(&fakeSubmitter{err: &ServerError{StatusCode: 502}}, WithLanguage(language.English))
	fill(f)
	state, _ := f.Submit(context.Background())
	if failed, ok := state.(Failed); !ok || failed.Message != contact.Text(language.English, contact.KeyDeliveryFailed) {
		t.Fatalf("state = %#v", state)
	}
}

func TestSubmitNetworkFailureUsesGenericMessage(t *testing.T) {
	t.Parallel()

	f := New(&fakeSubmitter{err: errors.New("dial tcp: connection refused")}, WithLanguage(language.English))
	fill(f)
	state, _ := f.Submit(context.Background())
	failed, ok := state.(Failed)
	if !ok || failed.Message != "Could not reach the server. Check your connection and try again." {
		t.Fatalf("state = %#v", state)
	}
}

func TestFailedStateAllowsResubmit(t *testing.T) {
	t.Parallel()

	sub := &fakeSubmitter{err: errors.New("offline")}
	f := New(sub, WithAfterFunc((&fakeScheduler{}).AfterFunc))
	fill(f)
	if _, err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected first submit to fail")
	}
	sub.mu.Lock()
	sub.err = nil
	sub.mu.Unlock()
	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("second Submit() = %v", err)
	}
	if len(sub.Calls()) != 2 {
		t.Fatalf("calls = %d, want 2", len(sub.Calls()))
	}
}

func TestSubmitWhileInFlightIsRejected(t *testing.T) {
	t.Parallel()

	sub := &fakeSubmitter{block: make(chan struct{}), entered: make(chan struct{}, 1), message: "ok"}
	f := New(sub, WithAfterFunc((&fakeScheduler{}).AfterFunc))
	fill(f)

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()
	<-sub.entered

	if _, ok := f.State().(Submitting); !ok {
		t.Fatalf("State() = %T, want Submitting", f.State())
	}
	if _, err := f.Submit(context.Background()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("second Submit() = %v, want ErrSubmissionInFlight", err)
	}
	close(sub.block)
	if err := <-done; err != nil {
		t.Fatalf("first Submit() = %v", err)
	}
	if len(sub.Calls()) != 1 {
		t.Fatalf("calls = %d, want 1", len(sub.Calls()))
	}
}

func TestStateName(t *testing.T) {
	t.Parallel()

	tests := map[string]State{
		"idle":       Idle{},
		"submitting": Submitting{},
		"success":    Success{},
		"error":      Failed{},
		"unknown":    nil,
	}
	for want, state := range tests {
		if got := StateName(state); got != want {
			t.Fatalf("StateName(%#v) = %q, want %q", state, got, want)
		}
	}
}
