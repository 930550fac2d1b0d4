// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/likhastudio/site/internal/contact"
	"github.com/likhastudio/site/internal/services/shared/i18nhttp"
	"github.com/likhastudio/site/internal/services/web/platform/httpx"
	webi18n "github.com/likhastudio/site/internal/services/web/platform/i18n"
	webtemplates "github.com/likhastudio/site/internal/services/web/templates"
	"golang.org/x/text/language"
)

// Page describes a full-page response.
type Page struct {
	Title       string
	Description string
	StatusCode  int
	Scripts     []string
	Body        templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders body inside the site shell in lang. Nothing is written
// when rendering fails, so the caller can still send an error response.
func WritePage(w http.ResponseWriter, r *http.Request, lang language.Tag, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	path := ""
	query := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
		query = r.URL.RawQuery
	}
	view := webtemplates.PageView{
		Title:       page.Title,
		Description: page.Description,
		Copy:        webi18n.Site(lang),
		Languages:   i18nhttp.BuildLanguageOptions(lang, path, query),
		Contact: webtemplates.ContactMessages{
			MissingFields:  contact.Text(lang, contact.KeyMissingFields),
			NetworkFailure: contact.Text(lang, contact.KeyNetworkFailure),
			DeliveryFailed: contact.Text(lang, contact.KeyDeliveryFailed),
		},
		Scripts: page.Scripts,
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	var buf bytes.Buffer
	if err := webtemplates.Layout(view).Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", view.Copy.Lang)
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteFragment renders a component without the shell.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
