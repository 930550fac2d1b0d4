// Package mosaic turns layout configs into renderable portfolio grids.
package mosaic

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/likhastudio/site/internal/layout"
	"github.com/likhastudio/site/internal/portfolio"
	"github.com/likhastudio/site/internal/services/web/routepath"
	webtemplates "github.com/likhastudio/site/internal/services/web/templates"
)

// ViewportWidthHeader is the client hint carrying the layout viewport width.
const ViewportWidthHeader = "Sec-CH-Viewport-Width"

// InitialConfig picks the config for a full page render. Browsers that sent
// the viewport hint get their class; everyone else starts on desktop and
// corrects after the first resize check.
func InitialConfig(r *http.Request) *layout.Config {
	if r != nil {
		if width, err := strconv.Atoi(strings.TrimSpace(r.Header.Get(ViewportWidthHeader))); err == nil {
			return layout.Select(width)
		}
	}
	return layout.ForClass(layout.Desktop)
}

// Placements returns the placements of view on cfg. Unknown views fall back
// to the gallery.
func Placements(view string, cfg *layout.Config) []portfolio.Placement {
	if view == routepath.GridViewPreview {
		return portfolio.Preview(cfg)
	}
	return portfolio.Gallery(cfg)
}

// NormalizeView maps any value to a known grid view.
func NormalizeView(view string) string {
	if strings.TrimSpace(view) == routepath.GridViewPreview {
		return routepath.GridViewPreview
	}
	return routepath.GridViewGallery
}

// Build renders view on cfg as a template grid.
func Build(view string, cfg *layout.Config) webtemplates.GridView {
	view = NormalizeView(view)
	placements := Placements(view, cfg)
	tiles := make([]webtemplates.Tile, 0, len(placements))
	for _, placement := range placements {
		tiles = append(tiles, webtemplates.Tile{
			Title:    placement.Project.Title,
			ImageURL: placement.Project.ImagePath(),
			Width:    placement.Span.Width,
			Height:   placement.Span.Height,
		})
	}
	return webtemplates.GridView{
		ID:              "mosaic-" + view,
		View:            view,
		Class:           cfg.Class().String(),
		Columns:         cfg.ColumnCount(),
		Source:          routepath.PortfolioGrid,
		TabletMinWidth:  layout.TabletMinWidth,
		DesktopMinWidth: layout.DesktopMinWidth,
		Tiles:           tiles,
	}
}
