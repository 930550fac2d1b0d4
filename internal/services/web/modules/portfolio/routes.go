package portfolio

import (
	"net/http"

	"github.com/likhastudio/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Portfolio, h.handleGallery)
	mux.HandleFunc(http.MethodGet+" "+routepath.PortfolioPrefix+"{$}", h.handleGallery)
	mux.HandleFunc(http.MethodGet+" "+routepath.PortfolioGrid, h.handleGrid)
	mux.HandleFunc(http.MethodGet+" "+routepath.PortfolioPrefix+"{rest...}", h.handleNotFound)
}
