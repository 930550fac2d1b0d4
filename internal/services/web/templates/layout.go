package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/likhastudio/site/internal/platform/branding"
	"github.com/likhastudio/site/internal/platform/markup"
	"github.com/likhastudio/site/internal/services/shared/i18nhttp"
	webi18n "github.com/likhastudio/site/internal/services/web/platform/i18n"
	"github.com/likhastudio/site/internal/services/web/routepath"
)

// ContactMessages are the locally produced form messages the browser shows.
type ContactMessages struct {
	MissingFields  string
	NetworkFailure string
	DeliveryFailed string
}

// PageView carries the shell shared by every full page.
type PageView struct {
	Title       string
	Description string
	Copy        webi18n.SiteCopy
	Languages   []i18nhttp.LanguageOption
	Contact     ContactMessages
	// Scripts are extra static asset names loaded after the shell scripts.
	Scripts []string
}

// Layout wraps the children in the document shell: header, footer and the
// contact modal.
func Layout(view PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Raw("<!DOCTYPE html>\n<html")
		m.Attr("lang", view.Copy.Lang)
		m.Raw(">\n<head>\n")
		m.Raw(`<meta charset="utf-8">` + "\n")
		m.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
		m.Raw(`<meta http-equiv="Accept-CH" content="Sec-CH-Viewport-Width">` + "\n")
		m.Raw("<title>")
		m.Text(view.Title)
		m.Raw("</title>\n")
		m.Raw(`<meta name="description"`)
		m.Attr("content", view.Description)
		m.Raw(">\n")
		m.Raw(`<link rel="stylesheet"`)
		m.Attr("href", routepath.Static("site.css"))
		m.Raw(">\n</head>\n<body>\n")

		m.Render(header(view))
		m.Raw("<main>\n")
		m.Render(templ.GetChildren(ctx))
		m.Raw("</main>\n")
		m.Render(footer(view.Copy))
		m.Render(ContactModal(view.Copy, view.Contact))

		for _, script := range append([]string{"contact.js"}, view.Scripts...) {
			m.Raw(`<script defer`)
			m.Attr("src", routepath.Static(script))
			m.Raw("></script>\n")
		}
		m.Raw("</body>\n</html>\n")
		return m.Err()
	})
}

func header(view PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		copy := view.Copy
		m := markup.New(ctx, w)
		m.Raw(`<header class="site-header" data-scroll-header>` + "\n")
		m.Raw(`<a class="brand"`)
		m.Attr("href", routepath.Root)
		m.Raw(`><img src="/static/images/logo.png"`)
		m.Attr("alt", branding.AppName)
		m.Raw("></a>\n")
		m.Raw(`<button type="button" class="menu-toggle" data-menu-toggle`)
		m.Attr("aria-label", copy.NavMenu)
		m.Raw("><span></span></button>\n")
		m.Raw(`<nav class="site-nav" data-menu>` + "\n")
		links := []struct{ href, label string }{
			{routepath.Root, copy.NavHome},
			{routepath.Section(routepath.ServicesSection), copy.NavServices},
			{routepath.Portfolio, copy.NavPortfolio},
		}
		for _, link := range links {
			m.Raw(`<a class="pill"`)
			m.Attr("href", link.href)
			m.Raw(">")
			m.Text(link.label)
			m.Raw("</a>\n")
		}
		m.Raw(`<button type="button" class="pill pill-strong" data-contact-open>`)
		m.Text(copy.NavContact)
		m.Raw("</button>\n")
		m.Raw(`<span class="language-switch">`)
		for _, option := range view.Languages {
			m.Raw(`<a`)
			m.Attr("href", option.URL)
			m.Attr("hreflang", option.Tag)
			if option.Active {
				m.Raw(` aria-current="true"`)
			}
			m.Raw(">")
			m.Text(option.Label)
			m.Raw("</a>")
		}
		m.Raw("</span>\n</nav>\n</header>\n")
		return m.Err()
	})
}

func footer(copy webi18n.SiteCopy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Raw(`<footer class="site-footer">` + "\n<div class=\"footer-grid\">\n")
		m.Raw(`<div><img class="footer-logo" src="/static/images/logo.png"`)
		m.Attr("alt", branding.AppName)
		m.Raw("><p>")
		m.Text(copy.FooterTagline)
		m.Raw("</p></div>\n")

		m.Raw("<div><h3>")
		m.Text(copy.FooterServicesHeading)
		m.Raw("</h3><ul>")
		for _, service := range copy.FooterServices {
			m.Raw(`<li><a href="`, routepath.Section(routepath.ServicesSection), `">`)
			m.Text(service)
			m.Raw("</a></li>")
		}
		m.Raw("</ul></div>\n")

		m.Raw("<div><h3>")
		m.Text(copy.FooterContactHeading)
		m.Raw("</h3><ul>")
		m.Raw(`<li><a href="mailto:`, templ.EscapeString(branding.PublicEmail), `">`)
		m.Text(branding.PublicEmail)
		m.Raw("</a></li><li>")
		m.Text(branding.Phone)
		m.Raw("</li><li>")
		m.Text(branding.Location)
		m.Raw("</li></ul></div>\n")

		m.Raw("<div><h3>")
		m.Text(copy.FooterFollowHeading)
		m.Raw(`</h3><div class="social">`)
		for _, name := range []string{"LinkedIn", "Instagram", "Dribbble"} {
			m.Raw(`<a href="#"`)
			m.Attr("aria-label", name)
			m.Raw(">")
			m.Text(name)
			m.Raw("</a>")
		}
		m.Raw("</div></div>\n</div>\n")

		m.Raw(`<p class="legal">© `)
		m.Text(branding.CopyrightYear + " " + branding.AppName + ". " + copy.FooterRights + " | " + copy.FooterVAT)
		m.Raw("</p>\n</footer>\n")
		return m.Err()
	})
}
