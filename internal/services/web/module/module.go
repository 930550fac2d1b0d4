// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"golang.org/x/text/language"
)

// ResolveLanguage returns the effective request language and may persist an
// explicit choice on the response.
type ResolveLanguage func(http.ResponseWriter, *http.Request) language.Tag

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
