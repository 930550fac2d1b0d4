package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/likhastudio/site/internal/platform/markup"
	webi18n "github.com/likhastudio/site/internal/services/web/platform/i18n"
	"github.com/likhastudio/site/internal/services/web/routepath"
)

// GalleryView is the portfolio page body.
type GalleryView struct {
	Copy webi18n.SiteCopy
	Grid GridView
}

// Gallery renders the full portfolio.
func Gallery(view GalleryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		copy := view.Copy
		m := markup.New(ctx, w)
		m.Raw(`<section class="gallery-hero"><a class="back-link"`)
		m.Attr("href", routepath.Root)
		m.Raw(">&larr; ")
		m.Text(copy.GalleryBack)
		m.Raw("</a><h1>")
		m.Text(copy.GalleryHeading)
		m.Raw("</h1><p>")
		m.Text(copy.GalleryIntro)
		m.Raw("</p></section>\n")

		m.Raw(`<section class="gallery">` + "\n")
		m.Render(Grid(view.Grid))
		m.Raw("</section>\n")

		m.Raw(`<section class="gallery-cta"><h2>`)
		m.Text(copy.GalleryCTAHeading)
		m.Raw("</h2><p>")
		m.Text(copy.GalleryCTABody)
		m.Raw(`</p><button type="button" class="pill pill-bright" data-contact-open>`)
		m.Text(copy.GalleryCTAButton)
		m.Raw("</button></section>\n")
		return m.Err()
	})
}
