// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
)

const (
	Root            = "/"
	Health          = "/up"
	StaticPrefix    = "/static/"
	Portfolio       = "/portfolio"
	PortfolioPrefix = "/portfolio/"
	PortfolioGrid   = "/portfolio/grid"
	APIPrefix       = "/api/"
	Contact         = "/api/contact"
)

// Home page section ids.
const (
	HeroSection     = "home"
	ServicesSection = "servizi"
	PreviewSection  = "portfolio"
)

// Grid view names accepted by PortfolioGrid.
const (
	GridViewGallery = "gallery"
	GridViewPreview = "preview"
)

// Static returns the URL of an embedded asset.
func Static(name string) string {
	return StaticPrefix + name
}

// Section returns the home page URL scrolled to section id.
func Section(id string) string {
	return Root + "#" + id
}

// PortfolioGridFor returns the grid fragment URL for a viewport width, the
// class the client is currently rendering and the grid view.
func PortfolioGridFor(width int, class string, view string) string {
	query := url.Values{}
	query.Set("width", strconv.Itoa(width))
	if class != "" {
		query.Set("class", class)
	}
	if view != "" {
		query.Set("view", view)
	}
	return PortfolioGrid + "?" + query.Encode()
}
