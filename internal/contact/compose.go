package contact

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/likhastudio/site/internal/mail"
	platformi18n "github.com/likhastudio/site/internal/platform/i18n"
	"golang.org/x/text/language"
)

var timestampLayouts = map[string]string{
	"it": "02/01/2006, 15:04:05",
	"en": "1/2/2006, 3:04:05 PM",
}

// Composer builds the two outbound messages for a submission.
type Composer struct {
	// Operator receives the notification.
	Operator string
	// From is the sender address of both messages.
	From string
	// OperatorLanguage selects the notification copy; zero means the site default.
	OperatorLanguage language.Tag
	// Location is the zone of the notification timestamp; nil means time.Local.
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// Notification builds the operator message: reply-to is the submitter so the
// operator can answer directly from the mail client.
func (c Composer) Notification(ctx context.Context, s Submission) (mail.Message, error) {
	s = s.Trimmed()
	lang := c.operatorLanguage()
	p := Printer(lang)

	html, err := render(ctx, notificationBody(notificationView{
		Heading:      p.Sprintf(keyNotifyHeading),
		NameLabel:    p.Sprintf(keyNotifyName),
		EmailLabel:   p.Sprintf(keyNotifyEmail),
		MessageLabel: p.Sprintf(keyNotifyMessage),
		FullName:     s.FullName(),
		Email:        s.Email,
		Message:      s.Message,
		SentAt:       p.Sprintf(keyNotifySentAt, c.timestamp(lang)),
	}))
	if err != nil {
		return mail.Message{}, fmt.Errorf("render notification: %w", err)
	}
	return mail.Message{
		To:      strings.TrimSpace(c.Operator),
		From:    strings.TrimSpace(c.From),
		ReplyTo: s.Email,
		Subject: p.Sprintf(keyNotifySubject, s.FullName()),
		HTML:    html,
	}, nil
}

// Confirmation builds the message sent back to the submitter in lang.
func (c Composer) Confirmation(ctx context.Context, s Submission, lang language.Tag) (mail.Message, error) {
	s = s.Trimmed()
	p := Printer(lang)

	html, err := render(ctx, confirmationBody(confirmationView{
		Heading:    p.Sprintf(keyConfirmHeading),
		Greeting:   p.Sprintf(keyConfirmGreeting, s.FirstName),
		Body:       p.Sprintf(keyConfirmBody),
		QuoteLabel: p.Sprintf(keyConfirmQuote),
		Message:    s.Message,
	}))
	if err != nil {
		return mail.Message{}, fmt.Errorf("render confirmation: %w", err)
	}
	return mail.Message{
		To:      s.Email,
		From:    strings.TrimSpace(c.From),
		Subject: p.Sprintf(keyConfirmSubject),
		HTML:    html,
	}, nil
}

func (c Composer) operatorLanguage() language.Tag {
	if c.OperatorLanguage == language.Und {
		return platformi18n.DefaultTag()
	}
	return c.OperatorLanguage
}

func (c Composer) timestamp(lang language.Tag) string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	base, _ := lang.Base()
	layout, ok := timestampLayouts[base.String()]
	if !ok {
		layout = timestampLayouts["it"]
	}
	return now().In(loc).Format(layout)
}

func render(ctx context.Context, component templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
