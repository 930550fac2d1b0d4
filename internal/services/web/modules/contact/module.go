// Package contact serves the contact form API.
package contact

import (
	"context"
	"net/http"

	"github.com/likhastudio/site/internal/contact"
	"github.com/likhastudio/site/internal/services/shared/i18nhttp"
	module "github.com/likhastudio/site/internal/services/web/module"
	"github.com/likhastudio/site/internal/services/web/platform/requestmeta"
	"github.com/likhastudio/site/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// Submitter relays one contact submission. *contact.Pipeline satisfies it.
type Submitter interface {
	Submit(context.Context, contact.Submission, language.Tag) (contact.Result, error)
}

// Module provides the contact API routes.
type Module struct {
	submitter       Submitter
	resolveLanguage module.ResolveLanguage
	policy          requestmeta.SchemePolicy
}

// New returns a contact module backed by submitter.
func New(submitter Submitter, resolveLanguage module.ResolveLanguage) Module {
	return NewWithPolicy(submitter, resolveLanguage, requestmeta.SchemePolicy{})
}

// NewWithPolicy returns a contact module with explicit request scheme policy
// for the cross-origin check.
func NewWithPolicy(submitter Submitter, resolveLanguage module.ResolveLanguage, policy requestmeta.SchemePolicy) Module {
	if resolveLanguage == nil {
		resolveLanguage = i18nhttp.Resolve
	}
	return Module{submitter: submitter, resolveLanguage: resolveLanguage, policy: policy}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires the contact API.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.submitter, m.resolveLanguage), m.policy)
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
