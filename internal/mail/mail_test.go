package mail

import (
	"context"
	"testing"
)

func TestMessageValidate(t *testing.T) {
	t.Parallel()

	valid := Message{To: "a@example.com", From: "b@example.com", Subject: "s", HTML: "<p>x</p>"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	tests := map[string]func(*Message){
		"to":      func(m *Message) { m.To = " " },
		"from":    func(m *Message) { m.From = "" },
		"subject": func(m *Message) { m.Subject = "" },
		"html":    func(m *Message) { m.HTML = "\n" },
	}
	for name, mutate := range tests {
		msg := valid
		mutate(&msg)
		if err := msg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	var got Message
	var s Sender = SenderFunc(func(_ context.Context, msg Message) error {
		got = msg
		return nil
	})
	if err := s.Send(context.Background(), Message{To: "x@example.com"}); err != nil {
		t.Fatalf("Send() = %v", err)
	}
	if got.To != "x@example.com" {
		t.Fatalf("got %+v", got)
	}
}
