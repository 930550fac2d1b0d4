package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/likhastudio/site/internal/platform/markup"
)

// Tile is one thumbnail on the mosaic.
type Tile struct {
	Title    string
	Caption  string
	ImageURL string
	Width    int
	Height   int
}

// GridView describes a mosaic rendered for one screen class.
type GridView struct {
	ID      string
	View    string
	Class   string
	Columns int
	// Source is the fragment endpoint the browser calls when the class changes.
	Source          string
	TabletMinWidth  int
	DesktopMinWidth int
	Tiles           []Tile
}

// Grid renders the mosaic. The root element carries what the browser needs
// to request a new grid when the viewport crosses a breakpoint.
func Grid(view GridView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Raw(`<div class="mosaic"`)
		m.Attr("id", view.ID)
		m.Attr("data-grid-view", view.View)
		m.Attr("data-grid-class", view.Class)
		m.Attr("data-grid-source", view.Source)
		m.Attr("data-tablet-min", itoa(view.TabletMinWidth))
		m.Attr("data-desktop-min", itoa(view.DesktopMinWidth))
		m.Attr("style", "grid-template-columns: repeat("+itoa(view.Columns)+", 1fr)")
		m.Raw(">\n")
		for i, tile := range view.Tiles {
			m.Raw(`<figure class="mosaic-tile"`)
			m.Attr("style", "grid-column: span "+itoa(tile.Width)+"; grid-row: span "+itoa(tile.Height)+"; aspect-ratio: "+itoa(tile.Width)+" / "+itoa(tile.Height))
			m.Raw(">")
			m.Raw(`<img`)
			m.Attr("src", tile.ImageURL)
			m.Attr("alt", tile.Title)
			if i >= 6 {
				m.Attr("loading", "lazy")
			}
			m.Raw(` onerror="this.style.display='none'">`)
			m.Raw(`<figcaption><span class="mosaic-title">`)
			m.Text(tile.Title)
			m.Raw(`</span>`)
			if tile.Caption != "" {
				m.Raw(`<span class="mosaic-caption">`)
				m.Text(tile.Caption)
				m.Raw(`</span>`)
			}
			m.Raw("</figcaption></figure>\n")
		}
		m.Raw("</div>\n")
		return m.Err()
	})
}
