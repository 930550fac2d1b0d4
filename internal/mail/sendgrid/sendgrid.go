// Package sendgrid delivers mail.Message values through the SendGrid v3 API.
package sendgrid

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/likhastudio/site/internal/mail"
	sg "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	// DefaultHost is the public SendGrid API host.
	DefaultHost = "https://api.sendgrid.com"

	sendEndpoint = "/v3/mail/send"
	maxErrorBody = 256
)

// ErrMissingCredentials reports a send attempted without an API key. The key
// is only checked at send time so a misconfigured site still serves pages.
var ErrMissingCredentials = errors.New("sendgrid api key is not configured")

// Config configures the SendGrid sender.
type Config struct {
	APIKey string
	// Host overrides DefaultHost; tests point it at an httptest server.
	Host string
	// FromName is the display name attached to the From address.
	FromName string
}

// Sender implements mail.Sender on top of the SendGrid client.
type Sender struct {
	apiKey   string
	host     string
	fromName string
}

// New returns a SendGrid sender.
func New(cfg Config) *Sender {
	host := strings.TrimRight(strings.TrimSpace(cfg.Host), "/")
	if host == "" {
		host = DefaultHost
	}
	return &Sender{
		apiKey:   strings.TrimSpace(cfg.APIKey),
		host:     host,
		fromName: strings.TrimSpace(cfg.FromName),
	}
}

// Send delivers msg. Any non-2xx provider status is returned as *StatusError.
func (s *Sender) Send(ctx context.Context, msg mail.Message) error {
	if s == nil || s.apiKey == "" {
		return ErrMissingCredentials
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}

	// The SendGrid client stores the request body on itself, so each send
	// gets its own client to keep concurrent requests independent.
	client := &sg.Client{Request: sg.GetRequest(s.apiKey, sendEndpoint, s.host)}
	client.Method = http.MethodPost

	resp, err := client.SendWithContext(ctx, s.build(msg))
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: truncate(resp.Body, maxErrorBody)}
	}
	return nil
}

func (s *Sender) build(msg mail.Message) *sgmail.SGMailV3 {
	m := sgmail.NewV3Mail()
	m.SetFrom(sgmail.NewEmail(s.fromName, strings.TrimSpace(msg.From)))
	m.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail("", strings.TrimSpace(msg.To)))
	m.AddPersonalizations(p)

	if replyTo := strings.TrimSpace(msg.ReplyTo); replyTo != "" {
		m.SetReplyTo(sgmail.NewEmail("", replyTo))
	}
	m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	return m
}

// StatusError is a provider response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sendgrid returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("sendgrid returned status %d: %s", e.StatusCode, e.Body)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n]
}
