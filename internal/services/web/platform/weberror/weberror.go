// Package weberror renders shared error responses for web modules.
package weberror

import (
	"errors"
	"log"
	"net/http"
	"strings"

	apperrors "github.com/likhastudio/site/internal/services/web/platform/errors"
	webi18n "github.com/likhastudio/site/internal/services/web/platform/i18n"
	"github.com/likhastudio/site/internal/services/web/platform/pagerender"
	webtemplates "github.com/likhastudio/site/internal/services/web/templates"
	"golang.org/x/text/language"
)

// ShouldRenderPage reports whether status should use the full error page.
func ShouldRenderPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe message for err. Internal error text is
// never returned.
func PublicMessage(err error) string {
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if statusCode == http.StatusBadRequest {
		var appErr apperrors.Error
		if errors.As(err, &appErr) && strings.TrimSpace(appErr.Message) != "" {
			return appErr.Message
		}
	}
	return http.StatusText(statusCode)
}

// WritePageError writes err as a localized page for not-found and server
// failures, and as plain text otherwise.
func WritePageError(w http.ResponseWriter, r *http.Request, lang language.Tag, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if !ShouldRenderPage(statusCode) {
		http.Error(w, PublicMessage(err), statusCode)
		return
	}
	if statusCode >= http.StatusInternalServerError {
		log.Printf("web page error status=%d err=%v", statusCode, err)
	}
	copy := webi18n.Site(lang)
	renderErr := pagerender.WritePage(w, r, lang, pagerender.Page{
		Title:      webtemplates.ErrorTitle(copy, statusCode),
		StatusCode: statusCode,
		Body:       webtemplates.ErrorState(copy, statusCode),
	})
	if renderErr != nil {
		log.Printf("render error page: %v", renderErr)
		http.Error(w, PublicMessage(err), statusCode)
	}
}
