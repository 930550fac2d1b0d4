package home

import (
	"net/http"

	"github.com/likhastudio/site/internal/services/web/platform/httpx"
	"github.com/likhastudio/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Root+"{$}", httpx.MethodNotAllowed("GET, HEAD"))
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
