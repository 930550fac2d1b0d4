package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/likhastudio/site/internal/platform/markup"
	webi18n "github.com/likhastudio/site/internal/services/web/platform/i18n"
	"github.com/likhastudio/site/internal/services/web/routepath"
)

// ContactModal renders the contact dialog. contact.js drives its states:
// idle, submitting, success (auto-closes) and error.
func ContactModal(copy webi18n.SiteCopy, messages ContactMessages) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Raw(`<dialog class="contact-modal" id="contact-modal" data-contact-modal>` + "\n")
		m.Raw(`<form class="contact-form" novalidate data-contact-form data-state="idle"`)
		m.Attr("action", routepath.Contact)
		m.Attr("lang", copy.Lang)
		m.Attr("data-msg-missing", messages.MissingFields)
		m.Attr("data-msg-network", messages.NetworkFailure)
		m.Attr("data-msg-delivery", messages.DeliveryFailed)
		m.Attr("data-label-submit", copy.ContactSubmit)
		m.Attr("data-label-submitting", copy.ContactSubmitting)
		m.Raw(">\n")
		m.Raw(`<button type="button" class="contact-close" data-contact-close`)
		m.Attr("aria-label", copy.ContactClose)
		m.Raw(">&times;</button>\n<h2>")
		m.Text(copy.ContactHeading)
		m.Raw("</h2>\n<p>")
		m.Text(copy.ContactIntro)
		m.Raw("</p>\n")

		fields := []struct {
			name, label, kind string
		}{
			{"firstName", copy.ContactFirstName, "text"},
			{"lastName", copy.ContactLastName, "text"},
			{"email", copy.ContactEmail, "email"},
		}
		for _, field := range fields {
			m.Raw(`<label>`)
			m.Text(field.label)
			m.Raw(`<input`)
			m.Attr("type", field.kind)
			m.Attr("name", field.name)
			m.Raw(` required></label>` + "\n")
		}
		m.Raw(`<label>`)
		m.Text(copy.ContactMessage)
		m.Raw(`<textarea name="message" rows="5" required></textarea></label>` + "\n")
		m.Raw(`<p class="contact-status" role="status" aria-live="polite" data-contact-status></p>` + "\n")
		m.Raw(`<button type="submit" class="pill pill-strong" data-contact-submit>`)
		m.Text(copy.ContactSubmit)
		m.Raw("</button>\n</form>\n</dialog>\n")
		return m.Err()
	})
}
