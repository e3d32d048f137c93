package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"webgro.in/website/internal/components"
	"webgro.in/website/internal/content"
	"webgro.in/website/internal/nav"
	"webgro.in/website/internal/site"
)

// Document renders a markdown-backed page such as the terms or privacy policy.
func (e Env) Document(v View, route site.Route, doc content.Document) g.Node {
	title := doc.Title
	if title == "" {
		title = e.Site.Name()
	}
	return e.layout(v, e.meta(route),
		Section(
			Class("band document"),
			components.Container(
				breadcrumbs(nav.Breadcrumbs(e.Site, route)),
				H1(g.Text(title)),
				g.If(!doc.Updated.IsZero(), P(Class("muted"),
					g.Text("Last updated "),
					g.El("time", g.Attr("datetime", doc.Updated.Format("2006-01-02")), g.Text(doc.Updated.Format("2 January 2006"))),
				)),
				Div(Class("prose"), g.Raw(doc.HTML)),
			),
		),
	)
}

func breadcrumbs(crumbs []nav.Crumb) g.Node {
	return Nav(
		Class("breadcrumbs"),
		Aria("label", "Breadcrumb"),
		Ol(g.Group(g.Map(crumbs, func(c nav.Crumb) g.Node {
			if c.Active {
				return Li(Span(Aria("current", "page"), g.Text(c.Label)))
			}
			return Li(A(Href(c.Href), g.Text(c.Label)))
		}))),
	)
}

// NotFound renders the 404 page.
func (e Env) NotFound(v View) g.Node {
	meta := e.meta("/")
	meta.Title = "Page not found - " + e.Site.Name()
	meta.Canonical = ""
	meta.JSONLD = nil
	return e.layout(v, meta,
		Section(
			Class("hero not-found"),
			components.Container(
				H1(g.Text("404")),
				P(Class("lead"), g.Text("Oops! The page you're looking for doesn't exist.")),
				Div(Class("actions"), components.ButtonLink("/", "Return to Home", "primary")),
			),
		),
	)
}
