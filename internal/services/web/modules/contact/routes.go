package contact

import (
	"net/http"

	"github.com/likhastudio/site/internal/services/web/platform/httpx"
	"github.com/likhastudio/site/internal/services/web/platform/requestmeta"
	"github.com/likhastudio/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers, policy requestmeta.SchemePolicy) {
	if mux == nil {
		return
	}
	mux.Handle(http.MethodPost+" "+routepath.Contact, requestmeta.RejectCrossOrigin(policy)(http.HandlerFunc(h.handleSubmit)))
	mux.HandleFunc(routepath.Contact, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.APIPrefix, h.handleNotFound)
}
