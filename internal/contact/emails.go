package contact

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/likhastudio/site/internal/platform/branding"
	"github.com/likhastudio/site/internal/platform/markup"
)

// notificationView is the data the operator notification renders.
type notificationView struct {
	Heading      string
	NameLabel    string
	EmailLabel   string
	MessageLabel string
	FullName     string
	Email        string
	Message      string
	SentAt       string
}

// confirmationView is the data the submitter confirmation renders.
type confirmationView struct {
	Heading    string
	Greeting   string
	Body       string
	QuoteLabel string
	Message    string
}

func notificationBody(v notificationView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Raw("<h2>")
		m.Text(v.Heading)
		m.Raw("</h2>\n<p><strong>")
		m.Text(v.NameLabel)
		m.Raw("</strong> ")
		m.Text(v.FullName)
		m.Raw("</p>\n<p><strong>")
		m.Text(v.EmailLabel)
		m.Raw("</strong> <a")
		m.Attr("href", "mailto:"+v.Email)
		m.Raw(">")
		m.Text(v.Email)
		m.Raw("</a></p>\n<p><strong>")
		m.Text(v.MessageLabel)
		m.Raw("</strong></p>\n<p>")
		m.Lines(v.Message)
		m.Raw("</p>\n<hr>\n", `<p style="color: #666; font-size: 12px;">`)
		m.Text(v.SentAt)
		m.Raw("</p>\n")
		return m.Err()
	})
}

func confirmationBody(v confirmationView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Raw("<h2>")
		m.Text(v.Heading)
		m.Raw("</h2>\n<p>")
		m.Text(v.Greeting)
		m.Raw("</p>\n<p>")
		m.Text(v.Body)
		m.Raw("</p>\n<p><strong>")
		m.Text(v.QuoteLabel)
		m.Raw("</strong></p>\n")
		m.Raw(`<blockquote style="background: #f5f5f5; padding: 10px; border-left: 3px solid #007a9c; margin: 10px 0;">`, "\n")
		m.Lines(v.Message)
		m.Raw("\n</blockquote>\n<hr>\n", `<p style="color: #666; font-size: 12px;">`)
		m.Text(branding.AppName + " | " + branding.PublicEmail)
		m.Raw("</p>\n")
		return m.Err()
	})
}
