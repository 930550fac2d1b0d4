// Package portfolio serves the gallery page and its resize fragment.
package portfolio

import (
	"net/http"

	"github.com/likhastudio/site/internal/services/shared/i18nhttp"
	module "github.com/likhastudio/site/internal/services/web/module"
	"github.com/likhastudio/site/internal/services/web/routepath"
)

// Module provides portfolio routes.
type Module struct {
	resolveLanguage module.ResolveLanguage
}

// New returns a portfolio module.
func New(resolveLanguage module.ResolveLanguage) Module {
	if resolveLanguage == nil {
		resolveLanguage = i18nhttp.Resolve
	}
	return Module{resolveLanguage: resolveLanguage}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "portfolio" }

// Mount wires portfolio route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.resolveLanguage))
	return module.Mount{Prefix: routepath.PortfolioPrefix, Handler: mux}, nil
}
