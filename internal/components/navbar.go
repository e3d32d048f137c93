package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"webgro.in/website/internal/nav"
	"webgro.in/website/internal/site"
)

// NavbarID is the element id htmx swaps when the navigation bar is re-rendered.
const NavbarID = "site-nav"

// NavFragmentPath serves the navigation bar fragment.
const NavFragmentPath = "/partials/nav"

// NavState encodes the bar state as fragment query parameters.
func NavState(bar *nav.Bar) url.Values {
	v := url.Values{}
	v.Set("route", string(bar.Route()))
	if bar.MenuOpen() {
		v.Set("menu", "open")
	} else {
		v.Set("menu", "closed")
	}
	if active := bar.ActiveSection(); active != "" {
		v.Set("active", string(active))
	}
	return v
}

// Navbar renders the navigation bar for the bar's current state.
func Navbar(cfg *site.Config, bar *nav.Bar) g.Node {
	state := NavState(bar)
	toggle := url.Values{}
	for k, vs := range state {
		toggle[k] = vs
	}
	toggle.Set("toggle", "1")

	menu, navClass := "closed", "navbar"
	if bar.MenuOpen() {
		menu, navClass = "open", "navbar is-open"
	}

	return Header(
		ID(NavbarID),
		Class(navClass),
		Data("route", string(bar.Route())),
		Data("menu", menu),
		Data("active", string(bar.ActiveSection())),
		Div(
			Class("container navbar-inner"),
			Logo(cfg.Name()),
			Nav(
				Class("nav-primary"),
				Aria("label", "Primary"),
				Ul(g.Group(g.Map(bar.Primary(), navItem))),
			),
			A(Href("/contact"), Class("btn btn-primary nav-cta"), g.Text("Request Demo")),
			Button(
				Type("button"),
				Class("nav-toggle"),
				Aria("controls", "mobile-menu"),
				Aria("expanded", boolString(bar.MenuOpen())),
				Aria("label", "Toggle menu"),
				g.Attr("hx-get", NavFragmentPath+"?"+toggle.Encode()),
				g.Attr("hx-target", "#"+NavbarID),
				g.Attr("hx-swap", "outerHTML"),
				Icon(toggleIcon(bar.MenuOpen()), ""),
			),
		),
		sectionNav(bar),
		g.If(bar.MenuOpen(), Div(
			ID("mobile-menu"),
			Class("mobile-menu"),
			Ul(g.Group(g.Map(bar.Primary(), navItem))),
			A(Href("/contact"), Class("btn btn-primary"), g.Text("Request Demo")),
		)),
	)
}

func sectionNav(bar *nav.Bar) g.Node {
	items := bar.SectionItems()
	if len(items) == 0 {
		return nil
	}
	return Nav(
		Class("nav-sections"),
		Aria("label", "On this page"),
		Div(Class("container"), Ul(g.Group(g.Map(items, navItem)))),
	)
}

func navItem(it nav.Item) g.Node {
	return Li(A(linkAttrs(it, "nav-link")...))
}

// linkAttrs renders an item as anchor attributes. In-page links carry their resolved action
// for the browser script and opt out of boosted navigation.
func linkAttrs(it nav.Item, class string) []g.Node {
	cls := class
	if it.Active {
		cls = classes(class, "is-active")
	}
	nodes := []g.Node{Href(it.Href), Class(cls), g.Text(it.Link.DisplayName)}
	if it.Active && !it.Link.HasAnchor() {
		nodes = append(nodes, Aria("current", "page"))
	}
	if it.Link.HasAnchor() {
		nodes = append(nodes,
			g.Attr("hx-boost", "false"),
			Data("nav-action", it.Action.Kind.String()),
			Data("nav-path", string(it.Action.Path)),
			Data("nav-anchor", string(it.Action.Anchor)),
		)
	}
	return nodes
}

func toggleIcon(open bool) string {
	if open {
		return "lucide:x"
	}
	return "lucide:menu"
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
