// Package pages composes the site's pages from the shared layout and components.
package pages

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"webgro.in/website/internal/components"
	"webgro.in/website/internal/content"
	"webgro.in/website/internal/nav"
	"webgro.in/website/internal/sections"
	"webgro.in/website/internal/seo"
	"webgro.in/website/internal/site"
)

// Env holds the dependencies shared by every page.
type Env struct {
	Site        *site.Config
	Content     *content.Library
	BaseURL     string
	ScrollDelay time.Duration
	Band        sections.Band
	Now         func() time.Time
}

// View is the per-request state a page renders with.
type View struct {
	Bar       *nav.Bar
	CSRFToken string
}

func (e Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Env) meta(route site.Route) seo.Meta {
	page, ok := e.Site.Page(route)
	if !ok {
		page = site.Page{Route: route, Title: e.Site.Name()}
	}
	return seo.ForPage(e.Site, e.BaseURL, page)
}

func (e Env) layout(v View, meta seo.Meta, body ...g.Node) g.Node {
	return components.Layout(components.PageConfig{
		Meta:        meta,
		Site:        e.Site,
		Bar:         v.Bar,
		CSRFToken:   v.CSRFToken,
		Year:        e.now().Year(),
		ScrollDelay: e.ScrollDelay,
		Band:        e.Band,
	}, body...)
}

// observedSection renders a page section addressable by id. Sections the route observes
// are tagged for the browser's intersection observer.
func (e Env) observedSection(route site.Route, id site.SectionID, class string, children ...g.Node) g.Node {
	tracked := false
	for _, s := range e.Site.ObservedSections(route) {
		if s == id {
			tracked = true
			break
		}
	}
	return Section(
		ID(string(id)),
		Class(class),
		g.If(tracked, Data("observe-section", string(id))),
		g.Group(children),
	)
}

func hero(heading, accent, lead string, actions ...g.Node) g.Node {
	return Section(
		Class("hero"),
		components.Container(
			H1(g.Text(heading+" "), Span(Class("text-gradient"), g.Text(accent))),
			P(Class("lead"), g.Text(lead)),
			g.If(len(actions) > 0, Div(Class("actions"), g.Group(actions))),
		),
	)
}

func cta(heading, lead string, actions ...g.Node) g.Node {
	return Section(
		Class("cta"),
		components.Container(
			H2(g.Text(heading)),
			P(Class("lead"), g.Text(lead)),
			Div(Class("actions"), g.Group(actions)),
		),
	)
}

type card struct {
	Icon  string
	Title string
	Body  string
}

func cards(items []card) g.Node {
	return Div(Class("card-grid"), g.Group(g.Map(items, func(c card) g.Node {
		return components.Card(c.Icon, c.Title, c.Body)
	})))
}

type step struct {
	Label string
	Title string
	Body  string
}

func steps(items []step) g.Node {
	return Ol(Class("steps"), g.Group(g.Map(items, func(s step) g.Node {
		return Li(
			Class("step"),
			Span(Class("step-label"), g.Text(s.Label)),
			H3(g.Text(s.Title)),
			P(g.Text(s.Body)),
		)
	})))
}

func checklist(items []string) g.Node {
	return Ul(Class("checklist"), g.Group(g.Map(items, func(s string) g.Node {
		return Li(components.Icon("lucide:check-circle", ""), Span(g.Text(s)))
	})))
}
