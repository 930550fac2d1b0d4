package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/likhastudio/site/internal/platform/markup"
	webi18n "github.com/likhastudio/site/internal/services/web/platform/i18n"
	"github.com/likhastudio/site/internal/services/web/routepath"
)

// ErrorTitle returns the page heading for statusCode.
func ErrorTitle(copy webi18n.SiteCopy, statusCode int) string {
	if statusCode == http.StatusNotFound {
		return copy.ErrorNotFoundTitle
	}
	return copy.ErrorServerTitle
}

// ErrorState renders the body of an error page.
func ErrorState(copy webi18n.SiteCopy, statusCode int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := copy.ErrorServerBody
		if statusCode == http.StatusNotFound {
			body = copy.ErrorNotFoundBody
		}
		m := markup.New(ctx, w)
		m.Raw(`<section class="error-state"><span class="badge">`)
		m.Text(itoa(statusCode))
		m.Raw("</span><h1>")
		m.Text(ErrorTitle(copy, statusCode))
		m.Raw("</h1><p>")
		m.Text(body)
		m.Raw(`</p><a class="pill pill-strong"`)
		m.Attr("href", routepath.Root)
		m.Raw(">")
		m.Text(copy.ErrorBackHome)
		m.Raw("</a></section>\n")
		return m.Err()
	})
}
