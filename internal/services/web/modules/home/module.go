// Package home serves the landing page.
package home

import (
	"net/http"

	"github.com/likhastudio/site/internal/services/shared/i18nhttp"
	module "github.com/likhastudio/site/internal/services/web/module"
	"github.com/likhastudio/site/internal/services/web/routepath"
)

// Module provides the root page.
type Module struct {
	resolveLanguage module.ResolveLanguage
}

// New returns a home module. A nil resolver uses request negotiation with
// cookie persistence.
func New(resolveLanguage module.ResolveLanguage) Module {
	if resolveLanguage == nil {
		resolveLanguage = i18nhttp.Resolve
	}
	return Module{resolveLanguage: resolveLanguage}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the root routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.resolveLanguage))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
