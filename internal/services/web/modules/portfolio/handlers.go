package portfolio

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/likhastudio/site/internal/layout"
	module "github.com/likhastudio/site/internal/services/web/module"
	apperrors "github.com/likhastudio/site/internal/services/web/platform/errors"
	"github.com/likhastudio/site/internal/services/web/platform/httpx"
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

func (h handlers) handleGallery(w http.ResponseWriter, r *http.Request) {
	lang := h.resolveLanguage(w, r)
	copy := webi18n.Site(lang)
	w.Header().Add("Vary", mosaic.ViewportWidthHeader)
	err := pagerender.WritePage(w, r, lang, pagerender.Page{
		Title:       copy.PortfolioTitle,
		Description: copy.PortfolioDescription,
		Scripts:     []string{"gallery.js"},
		Body: webtemplates.Gallery(webtemplates.GalleryView{
			Copy: copy,
			Grid: mosaic.Build(routepath.GridViewGallery, mosaic.InitialConfig(r)),
		}),
	})
	if err != nil {
		weberror.WritePageError(w, r, lang, err)
	}
}

// handleGrid answers a resize check. The client sends the viewport width and
// the class it is rendering; a width inside that class keeps the memoized
// config and nothing is re-rendered.
func (h handlers) handleGrid(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	width, err := strconv.Atoi(strings.TrimSpace(query.Get("width")))
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "width must be an integer"))
		return
	}

	var cfg *layout.Config
	if current, ok := layout.ParseScreenClass(query.Get("class")); ok {
		next, changed := layout.NewSelectorAt(current).Resize(width)
		if !changed {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		cfg = next
	} else {
		cfg = layout.Select(width)
	}

	grid := mosaic.Build(query.Get("view"), cfg)
	if err := pagerender.WriteFragment(w, r, http.StatusOK, webtemplates.Grid(grid)); err != nil {
		log.Printf("render grid: %v", err)
		httpx.WriteError(w, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WritePageError(w, r, h.resolveLanguage(w, r), apperrors.E(apperrors.KindNotFound, http.StatusText(http.StatusNotFound)))
}
