package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"webgro.in/website/internal/nav"
	"webgro.in/website/internal/sections"
	"webgro.in/website/internal/seo"
	"webgro.in/website/internal/site"
)

const htmxScript = "https://unpkg.com/htmx.org@1.9.12"

// PageConfig carries everything the shared layout needs.
type PageConfig struct {
	Meta        seo.Meta
	Site        *site.Config
	Bar         *nav.Bar
	CSRFToken   string
	Year        int
	ScrollDelay time.Duration
	Band        sections.Band
}

// Layout wraps content in the full HTML document: head metadata, the navigation bar and
// the footer.
func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Year == 0 {
		config.Year = time.Now().Year()
	}
	if !config.Band.Valid() {
		config.Band = sections.DefaultBand
	}
	meta := config.Meta

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(meta.Title)),
				Meta(Name("description"), Content(meta.Description)),
				g.If(meta.Canonical != "", Link(Rel("canonical"), Href(meta.Canonical))),
				g.If(config.CSRFToken != "", Meta(Name("csrf-token"), Content(config.CSRFToken))),

				Meta(g.Attr("property", "og:title"), Content(meta.OG.Title)),
				Meta(g.Attr("property", "og:description"), Content(meta.OG.Description)),
				Meta(g.Attr("property", "og:type"), Content(meta.OG.Type)),
				g.If(meta.OG.URL != "", Meta(g.Attr("property", "og:url"), Content(meta.OG.URL))),
				g.If(meta.OG.Image != "", Meta(g.Attr("property", "og:image"), Content(meta.OG.Image))),
				g.If(meta.OG.SiteName != "", Meta(g.Attr("property", "og:site_name"), Content(meta.OG.SiteName))),
				g.If(meta.Twitter.Card != "", Meta(Name("twitter:card"), Content(meta.Twitter.Card))),
				g.If(meta.Twitter.Site != "", Meta(Name("twitter:site"), Content(meta.Twitter.Site))),

				Link(Rel("icon"), Href("/assets/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/assets/styles.css")),
				g.Group(g.Map(meta.JSONLD, func(doc string) g.Node {
					return Script(Type("application/ld+json"), g.Raw(doc))
				})),

				Script(Src(htmxScript), Defer()),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js"), Defer()),
				Script(Src("/assets/js/site.js"), Defer()),
			),
			Body(
				g.Attr("hx-boost", "true"),
				g.If(config.CSRFToken != "", g.Attr("hx-headers", `{"X-CSRF-Token":"`+config.CSRFToken+`"}`)),
				Data("route", string(config.Bar.Route())),
				Data("scroll-delay", millis(config.ScrollDelay.Milliseconds())),
				Data("root-margin", config.Band.RootMargin()),
				Navbar(config.Site, config.Bar),
				Main(ID("main"), g.Group(content)),
				SiteFooter(config.Site, config.Bar, config.Year),
			),
		),
	)
}
