// Package modules defines the web module registry.
package modules

import (
	module "github.com/likhastudio/site/internal/services/web/module"
	"github.com/likhastudio/site/internal/services/web/modules/contact"
	"github.com/likhastudio/site/internal/services/web/modules/home"
	"github.com/likhastudio/site/internal/services/web/modules/portfolio"
	"github.com/likhastudio/site/internal/services/web/platform/requestmeta"
)

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries what the registry needs to build every module.
type Dependencies struct {
	// Submitter relays contact form submissions.
	Submitter contact.Submitter
	// ResolveLanguage overrides request language negotiation.
	ResolveLanguage module.ResolveLanguage
	// RequestSchemePolicy drives the contact cross-origin check.
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Default returns the site modules in mount order.
func Default(deps Dependencies) []Module {
	return []Module{
		home.New(deps.ResolveLanguage),
		portfolio.New(deps.ResolveLanguage),
		contact.NewWithPolicy(deps.Submitter, deps.ResolveLanguage, deps.RequestSchemePolicy),
	}
}
