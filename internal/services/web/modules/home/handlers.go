package home

import (
	"net/http"

	"github.com/likhastudio/site/internal/portfolio"
	module "github.com/likhastudio/site/internal/services/web/module"
	apperrors "github.com/likhastudio/site/internal/services/web/platform/errors"
	webi18n "github.com/likhastudio/site/internal/services/web/platform/i18n"
	"github.com/likhastudio/site/internal/services/web/platform/mosaic"
	"github.com/likhastudio/site/internal/services/web/platform/pagerender"
	"github.com/likhastudio/site/internal/services/web/platform/weberror"
	"github.com/likhastudio/site/internal/services/web/routepath"
	webtemplates "github.com/likhastudio/site/internal/services/web/templates"
)

type handlers struct {
	resolveLanguage module.ResolveLanguage
}

func newHandlers(resolveLanguage module.ResolveLanguage) handlers {
	return handlers{resolveLanguage: resolveLanguage}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	lang := h.resolveLanguage(w, r)
	copy := webi18n.Site(lang)
	w.Header().Add("Vary", mosaic.ViewportWidthHeader)
	err := pagerender.WritePage(w, r, lang, pagerender.Page{
		Title:       copy.HomeTitle,
		Description: copy.HomeDescription,
		Scripts:     []string{"carousel.js", "gallery.js"},
		Body: webtemplates.Home(webtemplates.HomeView{
			Copy:       copy,
			HeroImages: portfolio.HeroImages(),
			Preview:    mosaic.Build(routepath.GridViewPreview, mosaic.InitialConfig(r)),
		}),
	})
	if err != nil {
		weberror.WritePageError(w, r, lang, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WritePageError(w, r, h.resolveLanguage(w, r), apperrors.E(apperrors.KindNotFound, http.StatusText(http.StatusNotFound)))
}
