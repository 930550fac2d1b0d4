package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/likhastudio/site/internal/platform/markup"
	webi18n "github.com/likhastudio/site/internal/services/web/platform/i18n"
	"github.com/likhastudio/site/internal/services/web/routepath"
)

// HeroInterval is how long each hero slide stays, in milliseconds.
const HeroInterval = 4000

// HomeView is the home page body.
type HomeView struct {
	Copy       webi18n.SiteCopy
	HeroImages []string
	Preview    GridView
}

// Home renders hero, services, portfolio preview and call to action.
func Home(view HomeView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		copy := view.Copy
		m := markup.New(ctx, w)

		m.Raw(`<section class="hero" data-carousel`)
		m.Attr("id", routepath.HeroSection)
		m.Attr("data-interval", itoa(HeroInterval))
		m.Raw(">\n")
		for i, image := range view.HeroImages {
			m.Raw(`<img class="hero-slide`)
			if i == 0 {
				m.Raw(` is-active`)
			}
			m.Raw(`"`)
			m.Attr("src", image)
			m.Attr("alt", copy.HeroImageAlt+" "+itoa(i+1))
			m.Raw(">\n")
		}
		m.Raw(`<div class="hero-copy"><h1><span class="accent">`)
		m.Text(copy.HeroTitleLead)
		m.Raw("</span><br>")
		m.Text(copy.HeroTitleMid)
		m.Raw(`<br><span class="muted">`)
		m.Text(copy.HeroTitleTail)
		m.Raw("</span></h1>\n<p>")
		m.Text(copy.HeroTagline)
		m.Raw(`</p><button type="button" class="pill pill-outline">`)
		m.Text(copy.HeroShowreel)
		m.Raw("</button></div>\n")
		m.Raw(`<div class="hero-dots">`)
		for i := range view.HeroImages {
			m.Raw(`<button type="button" class="hero-dot`)
			if i == 0 {
				m.Raw(` is-active`)
			}
			m.Raw(`"`)
			m.Attr("data-slide", itoa(i))
			m.Attr("aria-label", copy.HeroSlideLabel+" "+itoa(i+1))
			m.Raw("></button>")
		}
		m.Raw("</div>\n</section>\n")

		m.Raw(`<section class="services"`)
		m.Attr("id", routepath.ServicesSection)
		m.Raw("><h2>")
		m.Text(copy.ServicesHeading)
		m.Raw("</h2><p>")
		m.Text(copy.ServicesIntro)
		m.Raw(`</p><div class="service-grid">` + "\n")
		for _, service := range copy.Services {
			m.Raw(`<article class="service-card"><h3>`)
			m.Text(service.Title)
			m.Raw("</h3><p>")
			m.Text(service.Description)
			m.Raw("</p><ul>")
			for _, feature := range service.Features {
				m.Raw("<li>")
				m.Text(feature)
				m.Raw("</li>")
			}
			m.Raw("</ul></article>\n")
		}
		m.Raw("</div></section>\n")

		m.Raw(`<section class="preview"`)
		m.Attr("id", routepath.PreviewSection)
		m.Raw(`><span class="badge">`)
		m.Text(copy.PreviewBadge)
		m.Raw("</span><h2>")
		m.Text(copy.PreviewHeading)
		m.Raw("</h2><p>")
		m.Text(copy.PreviewIntro)
		m.Raw("</p>\n")
		m.Render(Grid(view.Preview))
		m.Raw(`<a class="pill pill-strong"`)
		m.Attr("href", routepath.Portfolio)
		m.Raw(">")
		m.Text(copy.PreviewExplore)
		m.Raw("</a></section>\n")

		m.Raw(`<section class="cta"><h2>`)
		m.Text(copy.CTAHeading)
		m.Raw("</h2><p>")
		m.Text(copy.CTABody)
		m.Raw(`</p><button type="button" class="pill pill-light" data-contact-open>`)
		m.Text(copy.CTAStart)
		m.Raw(`</button><ul class="promises"><li>`)
		m.Text(copy.CTASatisfaction)
		m.Raw("</li><li>")
		m.Text(copy.CTARating)
		m.Raw("</li></ul></section>\n")
		return m.Err()
	})
}
