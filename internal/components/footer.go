package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"webgro.in/website/internal/nav"
	"webgro.in/website/internal/site"
)

// SiteFooter renders the link groups, contact details and social links.
func SiteFooter(cfg *site.Config, bar *nav.Bar, year int) g.Node {
	ct := cfg.Contact()
	return Footer(
		Class("site-footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Class("footer-brand"),
				Logo(cfg.Name()),
				P(Class("muted"), g.Text(cfg.Tagline())),
				Ul(
					Class("footer-contact"),
					g.If(ct.Email != "", Li(Icon("lucide:mail", ""), A(Href("mailto:"+ct.Email), g.Text(ct.Email)))),
					g.If(ct.Phone != "", Li(Icon("lucide:phone", ""), A(Href("tel:"+telHref(ct.Phone)), g.Text(ct.Phone)))),
					g.If(len(ct.Address) > 0, Li(Icon("lucide:map-pin", ""), Span(g.Text(strings.Join(ct.Address, ", "))))),
				),
			),
			g.Group(g.Map(cfg.Footer(), func(group site.LinkGroup) g.Node {
				return Div(
					Class("footer-group"),
					Data("group", group.Key),
					H3(g.Text(group.Title)),
					Ul(g.Group(g.Map(bar.Items(group.Links), func(it nav.Item) g.Node {
						return Li(A(linkAttrs(it, "footer-link")...))
					}))),
				)
			})),
		),
		Div(
			Class("container footer-bottom"),
			P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, cfg.Name()))),
			Div(
				Class("social"),
				g.Group(g.Map(cfg.Social(), func(s site.SocialLink) g.Node {
					return A(
						Href(s.Href),
						Class("social-link"),
						Target("_blank"),
						Rel("noopener noreferrer"),
						Icon(s.Icon, s.Label),
					)
				})),
			),
		),
	)
}

func telHref(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
}
